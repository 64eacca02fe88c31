package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When trying to get the builtin provider", t, func() {
		p, ok := Get("YOUKU")
		Convey("Then it should be found by id regardless of case", func() {
			So(ok, ShouldBeTrue)
			So(p.String(), ShouldEqual, "Youku")
			So(IDs(), ShouldContain, "youku")
		})
	})
}
