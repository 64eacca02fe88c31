package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vscope-cli/vscope/key"
)

func TestGet(t *testing.T) {
	Convey("Given a registered icon", t, func() {
		target := Views

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("Emoji variant matches the classic count glyph", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Views), ShouldEqual, "📺")
			So(Prefix(Score), ShouldEqual, "💜 ")
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(target), ShouldBeEmpty)
			So(Prefix(target), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown icon", func() {
			viper.Set(key.IconsVariant, "emoji")
			So(Get(Icon("nope")), ShouldBeEmpty)
		})
	})
}
