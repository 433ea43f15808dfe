// Package entity contains the core business objects of the project.
package entity

import (
	"strings"

	domainerrors "livesales/internal/domain/errors"

	"github.com/google/uuid"
)

// ReservedPlatformName is the label of the "every platform" filter and can never name a platform.
const ReservedPlatformName = "All"

// Built-in platform names.
const (
	PlatformTikTok    = "TikTok"
	PlatformInstagram = "Instagram"
	PlatformFacebook  = "Facebook"
)

// builtinNamespace seeds the deterministic IDs of the built-in platforms.
var builtinNamespace = uuid.MustParse("6f1c7d1e-3a0b-4c55-9a59-2f0f4f1f7a10")

// ColorTag names the accent color of a platform.
type ColorTag string

const (
	ColorBlack  ColorTag = "black"
	ColorPink   ColorTag = "pink"
	ColorBlue   ColorTag = "blue"
	ColorPurple ColorTag = "purple"
	ColorGreen  ColorTag = "green"
	ColorOrange ColorTag = "orange"
	ColorRed    ColorTag = "red"
	ColorTeal   ColorTag = "teal"
	ColorGray   ColorTag = "gray"
)

// ColorAttrs holds the display attributes clients render for a color tag.
type ColorAttrs struct {
	Hex        string `json:"hex"`
	Foreground string `json:"foreground"` // Text color readable on top of Hex.
}

var colorTable = map[ColorTag]ColorAttrs{
	ColorBlack:  {Hex: "#000000", Foreground: "#FFFFFF"},
	ColorPink:   {Hex: "#E1306C", Foreground: "#FFFFFF"},
	ColorBlue:   {Hex: "#1877F2", Foreground: "#FFFFFF"},
	ColorPurple: {Hex: "#8E44AD", Foreground: "#FFFFFF"},
	ColorGreen:  {Hex: "#25D366", Foreground: "#000000"},
	ColorOrange: {Hex: "#F39C12", Foreground: "#000000"},
	ColorRed:    {Hex: "#E74C3C", Foreground: "#FFFFFF"},
	ColorTeal:   {Hex: "#1ABC9C", Foreground: "#000000"},
	ColorGray:   {Hex: "#8E8E93", Foreground: "#FFFFFF"},
}

// IsValid checks if the ColorTag has an entry in the color table.
func (c ColorTag) IsValid() bool {
	_, ok := colorTable[c]

	return ok
}

// ColorAttributes returns the display attributes for a tag, falling back to gray.
func ColorAttributes(tag ColorTag) ColorAttrs {
	if attrs, ok := colorTable[tag]; ok {
		return attrs
	}

	return colorTable[ColorGray]
}

// Platform is a sales channel an order was taken on.
type Platform struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`  // Symbol name understood by the client.
	Color    ColorTag  `json:"color"` // Accent color tag, see ColorAttributes.
	IsCustom bool      `json:"is_custom"`
}

// BuiltinPlatformID returns the stable ID of a built-in platform name.
func BuiltinPlatformID(name string) uuid.UUID {
	return uuid.NewSHA1(builtinNamespace, []byte(strings.ToLower(name)))
}

// DefaultPlatforms returns the three built-in platforms in display order.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: BuiltinPlatformID(PlatformTikTok), Name: PlatformTikTok, Icon: "music.note", Color: ColorBlack},
		{ID: BuiltinPlatformID(PlatformInstagram), Name: PlatformInstagram, Icon: "camera", Color: ColorPink},
		{ID: BuiltinPlatformID(PlatformFacebook), Name: PlatformFacebook, Icon: "f.circle", Color: ColorBlue},
	}
}

// ValidatePlatformName checks a candidate name against the reserved word and every existing platform.
func ValidatePlatformName(name string, existing []Platform) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return domainerrors.ErrPlatformNameInvalid.WithDetails("name is empty")
	}
	if strings.EqualFold(trimmed, ReservedPlatformName) {
		return domainerrors.ErrPlatformNameInvalid.WithDetailsf("%q is reserved", ReservedPlatformName)
	}
	for _, p := range existing {
		if strings.EqualFold(strings.TrimSpace(p.Name), trimmed) {
			return domainerrors.ErrPlatformNameTaken.WithDetailsf("%q already exists", p.Name)
		}
	}

	return nil
}

// NewCustomPlatform builds a user-defined platform after validating its name.
func NewCustomPlatform(name, icon string, color ColorTag, existing []Platform) (Platform, error) {
	if err := ValidatePlatformName(name, existing); err != nil {
		return Platform{}, err
	}
	if !color.IsValid() {
		color = ColorGray
	}
	if strings.TrimSpace(icon) == "" {
		icon = "storefront"
	}

	return Platform{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(name),
		Icon:     icon,
		Color:    color,
		IsCustom: true,
	}, nil
}

// CanDelete reports whether the platform may be removed by the user.
func (p Platform) CanDelete() error {
	if !p.IsCustom {
		return domainerrors.ErrPlatformNotDeletable.WithDetailsf("%q is built in", p.Name)
	}

	return nil
}

// Attributes returns the display attributes of the platform's color.
func (p Platform) Attributes() ColorAttrs {
	return ColorAttributes(p.Color)
}
