package sections

import (
	"slices"
	"strings"
)

// Name identifies a storefront section that deployments may override.
type Name string

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

// Recognized storefront sections.
const (
	Alert             Name = "Alert"
	BannerText        Name = "BannerText"
	Breadcrumb        Name = "Breadcrumb"
	CrossSellingShelf Name = "CrossSellingShelf"
	EmptyState        Name = "EmptyState"
	Footer            Name = "Footer"
	Hero              Name = "Hero"
	Incentives        Name = "Incentives"
	Navbar            Name = "Navbar"
	Newsletter        Name = "Newsletter"
	ProductDetails    Name = "ProductDetails"
	ProductGallery    Name = "ProductGallery"
	ProductShelf      Name = "ProductShelf"
	RegionBar         Name = "RegionBar"
)

// catalog lists every recognized section with the sub-components it lets
// overrides replace. The set is closed: anything else is a configuration error.
var catalog = map[Name][]string{
	Alert:             {"Icon", "Link"},
	BannerText:        {"BannerText"},
	Breadcrumb:        {"Breadcrumb"},
	CrossSellingShelf: {"Carousel", "ProductCard"},
	EmptyState:        {"Button"},
	Footer:            {"Links", "Logo", "Social"},
	Hero:              {"Hero", "HeroHeader", "HeroImage"},
	Incentives:        {"Incentives"},
	Navbar:            {"CartIcon", "Logo", "NavbarLinks", "SearchInput"},
	Newsletter:        {"Button", "InputField"},
	ProductDetails:    {"BuyButton", "Price", "ProductTitle", "QuantitySelector", "ShippingSimulation", "SkuSelector"},
	ProductGallery:    {"EmptyGallery", "FilterDesktop", "FilterMobile", "ProductCard", "Sort"},
	ProductShelf:      {"Carousel", "ProductCard"},
	RegionBar:         {"Button", "Icon"},
}

// Recognized returns every recognized section name in sorted order.
func Recognized() []Name {
	out := make([]Name, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// IsRecognized reports whether name belongs to the recognized set.
func IsRecognized(name Name) bool {
	_, ok := catalog[name]
	return ok
}

// Lookup trims raw and returns the matching recognized name.
func Lookup(raw string) (Name, bool) {
	name := Name(strings.TrimSpace(raw))
	if !IsRecognized(name) {
		return "", false
	}
	return name, true
}

// Components returns the overridable sub-components for a section.
func Components(name Name) []string {
	return slices.Clone(catalog[name])
}

// AcceptsComponent reports whether component can be overridden inside name.
func AcceptsComponent(name Name, component string) bool {
	return slices.Contains(catalog[name], component)
}

func recognizedValues() []any {
	names := Recognized()
	out := make([]any, len(names))
	for i, name := range names {
		out[i] = name
	}
	return out
}
