package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"arredo/internal/domain/catalogs/brand"
	"arredo/internal/domain/catalogs/category"
)

// Parser turns legacy-site HTML into registry records. Selectors follow
// the legacy markup: brand tiles live in tier sections, category links in
// the main navigation with a data-group attribute.
type Parser struct{}

// NewParser creates a parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseBrandList extracts navigation-registry brand records from the
// brand listing page. Records come back in page order; sort order is
// assigned in steps of ten so later inserts do not renumber everything.
func (p *Parser) ParseBrandList(html string) ([]brand.Brand, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse brand list: %w", err)
	}

	var brands []brand.Brand

	sections := []struct {
		selector string
		tier     brand.Tier
	}{
		{"#marki-premium .marka", brand.TierPremium},
		{"#marki-specialist .marka", brand.TierSpecialist},
	}

	for _, section := range sections {
		order := 0
		doc.Find(section.selector).Each(func(i int, s *goquery.Selection) {
			href, ok := s.Find("a").Attr("href")
			if !ok {
				return
			}
			slug := slugFromHref(href)
			if slug == "" {
				return
			}

			order += 10
			b := brand.Brand{
				Slug:      slug,
				Label:     strings.TrimSpace(s.Find("a").Text()),
				Tier:      section.tier,
				SortOrder: order,
				Footer:    s.HasClass("marka-stopka"),
				LegacyURL: href,
			}

			if cats, ok := s.Attr("data-kategorie"); ok {
				b.Categories = splitList(cats)
			}
			if styles, ok := s.Attr("data-style"); ok {
				b.Styles = splitList(styles)
			}

			brands = append(brands, b)
		})
	}

	return brands, nil
}

// ParseCategoryNav extracts category records from the main navigation.
func (p *Parser) ParseCategoryNav(html string) ([]category.Category, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse category nav: %w", err)
	}

	var categories []category.Category
	order := map[category.NavGroup]int{}

	doc.Find("nav.kategorie a").Each(func(i int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		slug := slugFromHref(href)
		if slug == "" {
			return
		}

		group := category.NavGroup(s.AttrOr("data-group", string(category.GroupFurniture)))
		order[group] += 10

		categories = append(categories, category.Category{
			Slug:      slug,
			Label:     strings.TrimSpace(s.Text()),
			Group:     group,
			SortOrder: order[group],
		})
	})

	return categories, nil
}

// slugFromHref extracts the slug from legacy paths like
// "/marki/veneta-cucine.html" or "/kategorie/sofy.html".
func slugFromHref(href string) string {
	href = strings.TrimSuffix(href, ".html")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		href = href[i+1:]
	}
	return strings.TrimSpace(href)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
