package opt_test

import (
	"io"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/goutil/pkg/opt"
	"github.com/flier/goutil/pkg/res"
)

func TestOptionOps(t *testing.T) {
	Convey("Given Some and None options", t, func() {
		some := opt.Some(123)
		none := opt.None[int]()

		Convey("Map transforms the value or propagates None", func() {
			So(opt.Map(some, strconv.Itoa).Unwrap(), ShouldEqual, "123")
			So(opt.Map(none, strconv.Itoa).IsNone(), ShouldBeTrue)
		})

		Convey("MapOr falls back to the default", func() {
			So(opt.MapOr(some, "n/a", strconv.Itoa), ShouldEqual, "123")
			So(opt.MapOr(none, "n/a", strconv.Itoa), ShouldEqual, "n/a")
		})

		Convey("AndThen chains fallible lookups", func() {
			half := func(n int) opt.Option[int] {
				if n%2 != 0 {
					return opt.None[int]()
				}
				return opt.Some(n / 2)
			}

			So(opt.AndThen(opt.Some(4), half).Unwrap(), ShouldEqual, 2)
			So(opt.AndThen(opt.Some(3), half).IsNone(), ShouldBeTrue)
			So(opt.AndThen(none, half).IsNone(), ShouldBeTrue)
		})

		Convey("Filter keeps only accepted values", func() {
			even := func(n int) bool { return n%2 == 0 }

			So(opt.Some(2).Filter(even).IsSome(), ShouldBeTrue)
			So(some.Filter(even).IsNone(), ShouldBeTrue)
			So(none.Filter(even).IsNone(), ShouldBeTrue)
		})

		Convey("Or prefers the first present value", func() {
			So(some.Or(opt.Some(456)).Unwrap(), ShouldEqual, 123)
			So(none.Or(opt.Some(456)).Unwrap(), ShouldEqual, 456)
		})
	})

	Convey("Converting between Option and Result", t, func() {
		So(opt.Some(1).OkOr(io.EOF).Unwrap(), ShouldEqual, 1)
		So(opt.None[int]().OkOr(io.EOF).UnwrapErr(), ShouldEqual, io.EOF)

		So(opt.Ok(res.Ok(1)).Unwrap(), ShouldEqual, 1)
		So(opt.Ok(res.Err[int](io.EOF)).IsNone(), ShouldBeTrue)
	})

	Convey("Zip and Unzip round-trip a pair", t, func() {
		z := opt.Zip(opt.Some(1), opt.Some("a"))
		So(z.IsSome(), ShouldBeTrue)

		a, b := opt.Unzip(z)
		So(a.Unwrap(), ShouldEqual, 1)
		So(b.Unwrap(), ShouldEqual, "a")

		So(opt.Zip(opt.Some(1), opt.None[string]()).IsNone(), ShouldBeTrue)

		a, b = opt.Unzip(opt.Zip(opt.None[int](), opt.Some("a")))
		So(a.IsNone(), ShouldBeTrue)
		So(b.IsNone(), ShouldBeTrue)
	})
}
