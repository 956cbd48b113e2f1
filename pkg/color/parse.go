package color

import (
	stdcolor "image/color"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	tonalerrors "github.com/alexisbeaulieu97/tonal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Parse returns the display color described by input.
//
// Accepted inputs are hex strings ("#rgb" or "#rrggbb", the leading '#'
// optional), RGB and *RGB values with channels in [0,1], and any
// image/color.Color that is not fully transparent. Every other input
// yields an *errors.InvalidColorError.
func Parse(input any) (RGB, error) {
	switch v := input.(type) {
	case string:
		return ParseHex(v)
	case RGB:
		return validateRGB(v)
	case *RGB:
		if v == nil {
			return RGB{}, tonalerrors.NewInvalidColorError(nil, "nil RGB value", nil)
		}
		return validateRGB(*v)
	case stdcolor.Color:
		return fromImageColor(v)
	default:
		return RGB{}, tonalerrors.NewInvalidColorError(input, "unsupported color input", nil)
	}
}

// MustParse is like Parse but panics if the input cannot be parsed.
func MustParse(input any) RGB {
	c, err := Parse(input)
	if err != nil {
		panic("color.MustParse: " + err.Error())
	}
	return c
}

// ParseHex parses a 3 or 6 digit hex color. Surrounding whitespace, letter
// case and the leading '#' are ignored.
func ParseHex(s string) (RGB, error) {
	hex := strings.ToLower(strings.TrimSpace(s))
	if hex == "" {
		return RGB{}, tonalerrors.NewInvalidColorError(s, "empty color", nil)
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	parsed, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, tonalerrors.NewInvalidColorError(s, "expected #rgb or #rrggbb", err)
	}
	return fromColorful(parsed), nil
}

func validateRGB(c RGB) (RGB, error) {
	if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) {
		return RGB{}, tonalerrors.NewInvalidColorError(c, "channel is NaN", nil)
	}
	if err := validatorInstance().Struct(c); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
			return RGB{}, tonalerrors.NewInvalidColorError(c, "channel "+strings.ToLower(ves[0].Field())+" must be within [0,1]", err)
		}
		return RGB{}, tonalerrors.NewInvalidColorError(c, err.Error(), err)
	}
	return c, nil
}

func fromImageColor(c stdcolor.Color) (RGB, error) {
	converted, ok := colorful.MakeColor(c)
	if !ok {
		return RGB{}, tonalerrors.NewInvalidColorError(c, "color is fully transparent", nil)
	}
	return fromColorful(converted), nil
}
