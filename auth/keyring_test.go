package auth

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestClientID(t *testing.T) {
	Convey("Given an empty keyring", t, func() {
		_, err := ClientID()
		So(errors.Is(err, ErrNotFound), ShouldBeTrue)

		Convey("A stored client id can be read back and deleted", func() {
			So(SetClientID("e38f2f239754dc06"), ShouldBeNil)
			id, err := ClientID()
			So(err, ShouldBeNil)
			So(id, ShouldEqual, "e38f2f239754dc06")

			So(DeleteClientID(), ShouldBeNil)
			_, err = ClientID()
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Empty ids are refused", func() {
			So(SetClientID(""), ShouldNotBeNil)
		})
	})
}
