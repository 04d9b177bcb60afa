package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTexture(t *testing.T) {
	cases := []struct {
		name             string
		sand, silt, clay float64
		want             TextureClass
	}{
		{"clay dominates", 30, 30, 40, TextureClay},
		{"silt loam", 20, 60, 20, TextureSiltLoam},
		{"loam", 40, 40, 20, TextureLoam},
		{"sandy loam", 60, 25, 15, TextureSandyLoam},
		{"clay loam before sandy clay loam", 50, 23, 27, TextureClayLoam},
		{"clay loam", 30, 35, 35, TextureClayLoam},
		{"within tolerance", 40, 40, 20.005, TextureLoam},
		{"sum below 100", 50, 20, 27, TextureInvalid},
		{"sum above 100", 40, 40, 30, TextureInvalid},
		{"all zero", 0, 0, 0, TextureInvalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ClassifyTexture(c.sand, c.silt, c.clay))
		})
	}
}

func TestTextureClassValid(t *testing.T) {
	assert.True(t, TextureLoam.Valid())
	assert.False(t, TextureInvalid.Valid())
	assert.False(t, TextureClass("").Valid())
}
