package domain

import "github.com/samber/lo"

// DefaultPrimaryColor is used when the request carries no primary color.
const DefaultPrimaryColor = "#6666ff"

// FallbackGuide returns the fixed guide served when generation fails.
// Only the primary main shade depends on the request.
func FallbackGuide(primaryColor string) ColorTypographyResult {
	return ColorTypographyResult{
		ColorSystem: ColorSystem{
			Primary: Shades{
				Main:  lo.Ternary(primaryColor != "", primaryColor, DefaultPrimaryColor),
				Light: "#9999ff",
				Dark:  "#3333cc",
			},
			Secondary: Shades{
				Main:  "#ffb000",
				Light: "#ffe0a0",
				Dark:  "#c78300",
			},
		},
		Typography: Typography{
			BodySize:     "17pt",
			HeadlineSize: "34pt",
			LineHeight:   "1.6",
		},
		Accessibility: Accessibility{
			TextColorOnPrimary: "#ffffff",
			ContrastRatio:      "12.36:1",
		},
	}
}
