// Package textures holds the fixed zone-texture catalog and the batch
// runner that generates the missing ones through an Images API.
package textures

// Spec is one texture to generate: a short identifier used as the
// output filename and the prompt sent to the image model.
type Spec struct {
	Name   string
	Prompt string
}

// catalog is the fixed, ordered set of zone textures. Names become
// <out>/<name>.png; order is the processing order.
var catalog = []Spec{
	{
		Name: "industrial_floor",
		Prompt: "Seamless tileable industrial metal floor texture, dark steel plates with rust stains " +
			"and oil marks, rivets and grating, worn metallic surface, top-down view, game asset, " +
			"dark color scheme, 512x512 pixels",
	},
	{
		Name: "industrial_wall",
		Prompt: "Seamless tileable industrial wall texture, corrugated metal sheets with pipes and " +
			"conduits running across, rust patches and grime, concrete sections, dark atmosphere, " +
			"game asset, 512x512 pixels",
	},
	{
		Name: "ritual_floor",
		Prompt: "Seamless tileable dark stone floor texture with glowing purple mystical runes, " +
			"ancient carved arcane symbols, candlewax stains, occult dungeon floor, dark purple " +
			"and black color scheme, top-down view, game asset, 512x512 pixels",
	},
	{
		Name: "ritual_wall",
		Prompt: "Seamless tileable dark dungeon wall texture with carved arcane symbols, glowing " +
			"purple crystalline veins in dark stone, mystical energy cracks, ancient masonry, " +
			"game asset, 512x512 pixels",
	},
	{
		Name: "organic_floor",
		Prompt: "Seamless tileable dirty organic floor texture, mud and debris, scattered small bones " +
			"and organic matter, nest materials like straw and fur, grimy dungeon floor, earthy " +
			"brown and dark colors, top-down view, game asset, 512x512 pixels",
	},
	{
		Name: "organic_wall",
		Prompt: "Seamless tileable organic cave wall texture, earthy browns and dark colors, roots " +
			"and vines growing through cracks, moisture stains, natural rock formation with " +
			"organic growth, game asset, 512x512 pixels",
	},
	{
		Name: "neutral_floor",
		Prompt: "Seamless tileable clean stone floor texture, polished grey flagstones with minimal " +
			"wear, orderly geometric pattern, safe room floor appearance, neutral grey tones, " +
			"top-down view, game asset, 512x512 pixels",
	},
	{
		Name: "neutral_wall",
		Prompt: "Seamless tileable clean stone wall texture, well-maintained grey masonry blocks, " +
			"minimal decoration, sturdy dungeon wall, neutral grey and brown tones, game asset, " +
			"512x512 pixels",
	},
}

// Catalog returns a copy of the fixed texture set in processing order.
func Catalog() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// SpecByName looks up a catalog entry by its exact name.
func SpecByName(name string) (Spec, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
