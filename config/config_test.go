package config

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/filesystem"
	"github.com/vscope-cli/vscope/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("scope.result_count"), ShouldEqual, "scope_result_count")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.ScopeOrderBy]
			So(f.Env(), ShouldEqual, "VSCOPE_SCOPE_ORDER_BY")
		})
	})
}

func TestResolveSettings(t *testing.T) {
	Convey("Given raw scope settings", t, func() {
		Convey("Valid indices resolve to their values", func() {
			s, err := ResolveSettings(1, 20, 2)
			So(err, ShouldBeNil)
			So(s.IndexTop, ShouldEqual, "电视剧")
			So(s.ResultCount, ShouldEqual, 20)
			So(s.OrderBy, ShouldEqual, "view-count")
		})

		Convey("An index_top outside the list is rejected", func() {
			_, err := ResolveSettings(5, 20, 0)
			So(errors.Is(err, ErrInvalidSetting), ShouldBeTrue)
		})

		Convey("A non-positive result count is rejected", func() {
			_, err := ResolveSettings(0, 0, 0)
			So(errors.Is(err, ErrInvalidSetting), ShouldBeTrue)
		})

		Convey("An order_by outside the list is rejected", func() {
			_, err := ResolveSettings(0, 10, -1)
			So(errors.Is(err, ErrInvalidSetting), ShouldBeTrue)
		})

		Convey("LoadSettings reads the defaults", func() {
			_ = Setup()
			viper.Set(key.ScopeIndexTop, 1)
			s, err := LoadSettings()
			So(err, ShouldBeNil)
			So(s.IndexTop, ShouldEqual, "电视剧")
			So(s.OrderBy, ShouldEqual, "relevance")
		})
	})
}
