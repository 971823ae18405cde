package untrust_test

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/goutil/pkg/opt"
	"github.com/flier/goutil/pkg/untrust"
)

var errIncomplete = errors.New("trailing bytes")

func TestInput(t *testing.T) {
	Convey("Given inputs of various shapes", t, func() {
		So(untrust.Input(nil).Empty(), ShouldBeTrue)
		So(untrust.Input("x").Empty(), ShouldBeFalse)
		So(untrust.Input("abc").Len(), ShouldEqual, 3)

		Convey("Clone copies the bytes", func() {
			orig := untrust.Input([]byte("abc"))
			c := orig.Clone()

			orig.AsSliceLessSafe()[0] = 'z'
			So(string(c.AsSliceLessSafe()), ShouldEqual, "abc")
		})
	})
}

func TestReadAll(t *testing.T) {
	readFirst := func(r *untrust.Reader) (byte, error) { return r.ReadByte() }

	Convey("ReadAll demands the input be fully consumed", t, func() {
		v, err := untrust.ReadAll(untrust.Input("a"), errIncomplete, readFirst)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, byte('a'))

		_, err = untrust.ReadAll(untrust.Input("ab"), errIncomplete, readFirst)
		So(err, ShouldEqual, errIncomplete)
	})

	Convey("ReadAll propagates the read's own error", t, func() {
		_, err := untrust.ReadAll(untrust.Input(nil), errIncomplete, readFirst)
		So(err, ShouldEqual, untrust.ErrEndOfInput)
	})
}

func TestReadAllOptional(t *testing.T) {
	read := func(r opt.Option[*untrust.Reader]) (int, error) {
		rd, ok := r.Get()
		if !ok {
			return -1, nil
		}
		b, err := rd.ReadByte()
		return int(b), err
	}

	Convey("A present input goes through the full-consumption check", t, func() {
		v, err := untrust.ReadAllOptional(opt.Some(untrust.Input("a")), errIncomplete, read)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, int('a'))

		_, err = untrust.ReadAllOptional(opt.Some(untrust.Input("ab")), errIncomplete, read)
		So(err, ShouldEqual, errIncomplete)
	})

	Convey("An absent input reaches read as None", t, func() {
		v, err := untrust.ReadAllOptional(opt.None[untrust.Input](), errIncomplete, read)
		So(err, ShouldBeNil)
		So(v, ShouldEqual, -1)
	})
}
