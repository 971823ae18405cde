package untrust_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/goutil/pkg/untrust"
)

func TestReader(t *testing.T) {
	Convey("Given a reader over a short payload", t, func() {
		r := untrust.NewReader(untrust.Input("abc"))

		Convey("ReadByte consumes one byte at a time", func() {
			b, err := r.ReadByte()
			So(err, ShouldBeNil)
			So(b, ShouldEqual, byte('a'))
			So(r.Remaining(), ShouldEqual, 2)
		})

		Convey("ReadByte past the end reports ErrEndOfInput", func() {
			So(r.SkipToEnd(), ShouldBeNil)

			_, err := r.ReadByte()
			So(err, ShouldEqual, untrust.ErrEndOfInput)
		})

		Convey("Peek looks ahead without consuming", func() {
			So(r.Peek('a'), ShouldBeTrue)
			So(r.Peek('b'), ShouldBeFalse)
			So(r.Remaining(), ShouldEqual, 3)
		})

		Convey("ReadBytes returns a view of the consumed range", func() {
			b, err := r.ReadBytes(2)
			So(err, ShouldBeNil)
			So(string(b.AsSliceLessSafe()), ShouldEqual, "ab")
			So(r.AtEnd(), ShouldBeFalse)
		})

		Convey("ReadBytes past the end consumes everything and fails", func() {
			_, err := r.ReadBytes(4)
			So(err, ShouldEqual, untrust.ErrEndOfInput)
			So(r.AtEnd(), ShouldBeTrue)
		})

		Convey("A negative count is rejected", func() {
			_, err := r.ReadBytes(-1)
			So(err, ShouldEqual, untrust.ErrEndOfInput)
		})

		Convey("Clone advances independently", func() {
			c := r.Clone()
			So(c.Skip(3), ShouldBeNil)
			So(c.AtEnd(), ShouldBeTrue)
			So(r.Remaining(), ShouldEqual, 3)
		})
	})
}

func TestReadPartial(t *testing.T) {
	Convey("ReadPartial reports exactly the consumed bytes", t, func() {
		r := untrust.NewReader(untrust.Input("length-prefixed"))

		consumed, v, err := untrust.ReadPartial(r, func(r *untrust.Reader) (byte, error) {
			if err := r.Skip(6); err != nil {
				return 0, err
			}
			return r.ReadByte()
		})

		So(err, ShouldBeNil)
		So(v, ShouldEqual, byte('-'))
		So(string(consumed.AsSliceLessSafe()), ShouldEqual, "length-")
		So(r.Remaining(), ShouldEqual, 8)
	})
}
