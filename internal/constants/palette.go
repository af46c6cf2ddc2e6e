package constants

// Palette holds the category color swatches, indexed by a category's ColorID.
// Its length must stay in sync with models.PaletteSize.
var Palette = [...]string{
	"#E05252", // red
	"#E0A052", // orange
	"#E0D452", // yellow
	"#8FD452", // lime
	"#52C47A", // green
	"#52C4B8", // teal
	"#52A8E0", // blue
	"#5270E0", // indigo
	"#8B52E0", // violet
	"#C452E0", // magenta
	"#E05290", // pink
	"#9E9E9E", // gray
}
