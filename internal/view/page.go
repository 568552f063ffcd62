// Package view turns a session's listings and draft into the page model and
// renders it as HTML.
package view

import (
	"strconv"

	"corretoraBack/internal/config"
	"corretoraBack/internal/format"
	"corretoraBack/internal/models"
)

// MaxCardFeatures is how many feature badges a card shows before the "+N" badge.
const MaxCardFeatures = 3

type Page struct {
	Site   config.Site
	Cards  []Card
	Empty  bool
	Dialog Dialog
}

type Card struct {
	ID           string
	Image        string
	Title        string
	TypeLabel    string
	Price        string
	Address      string
	Location     string
	Stats        []Stat
	Description  string
	Features     []string
	MoreFeatures string
}

type Stat struct {
	Icon  string
	Label string
	Value string
}

type Dialog struct {
	Open          bool
	Alert         string
	Draft         models.Draft
	Price         string
	Area          string
	Bedrooms      string
	Bathrooms     string
	ParkingSpaces string
	TypeOptions   []TypeOption
	Features      []FeatureBadge
	UploadName    string
}

type TypeOption struct {
	Value    string
	Label    string
	Selected bool
}

type FeatureBadge struct {
	Index int
	Text  string
}

// State is the per-session UI state that is not part of the draft.
type State struct {
	DialogOpen bool
	Alert      string
}

// BuildPage is a pure function of the listings snapshot and the draft.
func BuildPage(site config.Site, listings []models.Property, draft models.Draft, state State) Page {
	page := Page{
		Site:  site,
		Cards: make([]Card, 0, len(listings)),
		Empty: len(listings) == 0,
	}
	for _, p := range listings {
		page.Cards = append(page.Cards, BuildCard(p))
	}
	page.Dialog = buildDialog(draft, state)
	return page
}

func BuildCard(p models.Property) Card {
	c := Card{
		ID:          p.ID,
		Image:       p.Image,
		Title:       p.Title,
		TypeLabel:   p.Type.Label(),
		Price:       format.BRL(p.Price),
		Address:     p.Address,
		Description: p.Description,
		Stats: []Stat{
			{Icon: "area", Label: "Área", Value: format.Area(p.Area)},
			{Icon: "bed", Label: "Quartos", Value: strconv.Itoa(p.Bedrooms)},
			{Icon: "bath", Label: "Banheiros", Value: strconv.Itoa(p.Bathrooms)},
			{Icon: "car", Label: "Vagas", Value: strconv.Itoa(p.ParkingSpaces)},
		},
	}
	if p.City != "" && p.Neighborhood != "" {
		c.Location = p.Neighborhood + ", " + p.City
	}
	if len(p.Features) > MaxCardFeatures {
		c.Features = append([]string(nil), p.Features[:MaxCardFeatures]...)
		c.MoreFeatures = "+" + strconv.Itoa(len(p.Features)-MaxCardFeatures)
	} else {
		c.Features = append([]string(nil), p.Features...)
	}
	return c
}

func buildDialog(d models.Draft, state State) Dialog {
	dlg := Dialog{
		Open:          state.DialogOpen || state.Alert != "",
		Alert:         state.Alert,
		Draft:         d,
		Area:          formatInput(d.Area),
		Bedrooms:      formatCount(d.Bedrooms),
		Bathrooms:     formatCount(d.Bathrooms),
		ParkingSpaces: formatCount(d.ParkingSpaces),
	}
	if d.PriceSet {
		dlg.Price = strconv.FormatFloat(d.Price, 'f', -1, 64)
	}
	for _, t := range models.PropertyTypes {
		dlg.TypeOptions = append(dlg.TypeOptions, TypeOption{
			Value:    string(t),
			Label:    t.Label(),
			Selected: d.Type == t,
		})
	}
	for i, f := range d.Features {
		dlg.Features = append(dlg.Features, FeatureBadge{Index: i, Text: f})
	}
	if d.Upload != nil {
		dlg.UploadName = d.Upload.Filename
	}
	return dlg
}

// Zero renders as an empty input so the placeholder shows and an untouched
// field posts back empty.
func formatInput(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatCount(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
