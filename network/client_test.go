package network

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		So(NewClient(5*time.Second).Timeout, ShouldEqual, 5*time.Second)
		So(NewClient(0).Timeout, ShouldEqual, DefaultTimeout)
		So(Client.Transport, ShouldNotBeNil)
	})
}
