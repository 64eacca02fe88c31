package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vscope-cli/vscope/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Given two versions", t, func() {
		Convey("Newer majors win over minors and patches", func() {
			c, err := Compare("2.0.0", "1.9.9")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 1)
		})

		Convey("A leading v is ignored", func() {
			c, err := Compare("v0.3.1", "0.3.1")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, 0)
		})

		Convey("Older patches compare lower", func() {
			c, err := Compare("0.3.0", "0.3.1")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, -1)
		})

		Convey("Garbage fails to parse", func() {
			_, err := Compare("latest", "0.3.1")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a release endpoint", t, func() {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.3"}`))
		}))
		defer server.Close()

		ReleasesURL = server.URL
		So(versionCacher.Set(""), ShouldBeNil)

		Convey("The tag is returned without its prefix and cached", func() {
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.2.3")

			v, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "1.2.3")
			So(hits, ShouldEqual, 1)
		})
	})
}
