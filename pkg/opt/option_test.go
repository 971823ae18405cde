package opt_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/goutil/pkg/opt"
)

func TestOption(t *testing.T) {
	Convey("Given Some and None options", t, func() {
		some := opt.Some(123)
		none := opt.None[int]()

		Convey("Then presence checks distinguish them", func() {
			So(some.IsSome(), ShouldBeTrue)
			So(some.IsNone(), ShouldBeFalse)
			So(none.IsSome(), ShouldBeFalse)
			So(none.IsNone(), ShouldBeTrue)
		})

		Convey("Then Get follows the comma-ok convention", func() {
			v, ok := some.Get()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 123)

			v, ok = none.Get()
			So(ok, ShouldBeFalse)
			So(v, ShouldEqual, 0)
		})

		Convey("Then unwrapping respects defaults", func() {
			So(some.Unwrap(), ShouldEqual, 123)
			So(some.UnwrapOr(456), ShouldEqual, 123)
			So(none.UnwrapOr(456), ShouldEqual, 456)
			So(none.UnwrapOrElse(func() int { return 789 }), ShouldEqual, 789)
			So(none.UnwrapOrZero(), ShouldEqual, 0)
		})

		Convey("Then unwrapping None panics", func() {
			So(func() { none.Unwrap() }, ShouldPanic)
			So(func() { none.Expect("boom") }, ShouldPanicWith, "boom")
		})

		Convey("Then String renders the variant", func() {
			So(some.String(), ShouldEqual, "Some(123)")
			So(none.String(), ShouldEqual, "None")
		})
	})

	Convey("Given a pointer", t, func() {
		v := 42

		Convey("FromPtr wraps non-nil and nil alike", func() {
			So(opt.FromPtr(&v).Unwrap(), ShouldEqual, 42)
			So(opt.FromPtr[int](nil).IsNone(), ShouldBeTrue)
		})
	})

	Convey("The zero Option is None", t, func() {
		var o opt.Option[string]
		So(o.IsNone(), ShouldBeTrue)
	})
}
