package analyzer

import "math"

// TextureClass 土壤质地类别
type TextureClass string

const (
	TextureClay          TextureClass = "Clay"
	TextureSandyLoam     TextureClass = "Sandy Loam"
	TextureClayLoam      TextureClass = "Clay Loam"
	TextureSandyClayLoam TextureClass = "Sandy Clay Loam"
	TextureSiltLoam      TextureClass = "Silt Loam"
	TextureLoam          TextureClass = "Loam"

	// TextureInvalid 百分比之和不等于100
	TextureInvalid TextureClass = "Invalid"
)

const textureTolerance = 0.01

// Valid 是否为有效的质地类别
func (t TextureClass) Valid() bool {
	return t != TextureInvalid && t != ""
}

// ClassifyTexture 按固定顺序判定质地，先命中者为准
func ClassifyTexture(sand, silt, clay float64) TextureClass {
	if math.Abs(sand+silt+clay-100.0) >= textureTolerance {
		return TextureInvalid
	}
	switch {
	case clay >= 40:
		return TextureClay
	case sand >= 45 && clay < 27:
		return TextureSandyLoam
	case clay >= 27 && clay < 40:
		return TextureClayLoam
	case sand >= 45 && clay >= 27:
		return TextureSandyClayLoam
	case silt >= 50:
		return TextureSiltLoam
	default:
		return TextureLoam
	}
}
