package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corretoraBack/internal/config"
	"corretoraBack/internal/models"
)

func sampleProperty() models.Property {
	return models.Property{
		ID:            "p1",
		Title:         "Casa X",
		Price:         450000,
		Address:       "Rua A, 1",
		City:          "Brasília",
		Neighborhood:  "Asa Sul",
		Area:          180,
		Bedrooms:      3,
		Bathrooms:     2,
		ParkingSpaces: 2,
		Type:          models.PropertyTypeTownhouse,
		Description:   "Casa ampla com quintal",
		Features:      []string{"Piscina", "Churrasqueira", "Jardim", "Portão eletrônico", "Varanda"},
		Image:         models.DefaultImageURL,
	}
}

func TestBuildCard(t *testing.T) {
	c := BuildCard(sampleProperty())

	assert.Equal(t, "R$ 450.000,00", c.Price)
	assert.Equal(t, "Sobrado", c.TypeLabel)
	assert.Equal(t, "Asa Sul, Brasília", c.Location)
	assert.Equal(t, []string{"Piscina", "Churrasqueira", "Jardim"}, c.Features)
	assert.Equal(t, "+2", c.MoreFeatures)
	require.Len(t, c.Stats, 4)
	assert.Equal(t, "180m²", c.Stats[0].Value)
	assert.Equal(t, "3", c.Stats[1].Value)
	assert.Equal(t, "2", c.Stats[2].Value)
	assert.Equal(t, "2", c.Stats[3].Value)
}

func TestBuildCardOptionalParts(t *testing.T) {
	p := sampleProperty()
	p.City = ""
	p.Features = []string{"Piscina", "Jardim", "Varanda"}
	p.Description = ""

	c := BuildCard(p)
	assert.Equal(t, "", c.Location)
	assert.Len(t, c.Features, 3)
	assert.Equal(t, "", c.MoreFeatures)
	assert.Equal(t, "", c.Description)
}

func TestBuildPageEmptyAndDialog(t *testing.T) {
	d := models.NewDraft()
	d.Type = models.PropertyTypeLand
	d.AddFeature("Piscina")
	d.Upload = &models.ImageUpload{Filename: "casa.png"}

	page := BuildPage(config.Default().Site, nil, d, State{Alert: models.RequiredFieldsMessage})

	assert.True(t, page.Empty)
	assert.Empty(t, page.Cards)
	assert.True(t, page.Dialog.Open)
	assert.Equal(t, "", page.Dialog.Price)
	assert.Equal(t, "", page.Dialog.Area)
	assert.Equal(t, "", page.Dialog.Bedrooms)
	assert.Equal(t, []FeatureBadge{{Index: 0, Text: "Piscina"}}, page.Dialog.Features)
	assert.Equal(t, "casa.png", page.Dialog.UploadName)

	var selected []string
	for _, opt := range page.Dialog.TypeOptions {
		if opt.Selected {
			selected = append(selected, opt.Value)
		}
	}
	assert.Equal(t, []string{"Land"}, selected)
}

func TestBuildPageKeepsOrder(t *testing.T) {
	a, b := sampleProperty(), sampleProperty()
	a.ID, b.ID = "new", "old"

	page := BuildPage(config.Site{}, []models.Property{a, b}, models.NewDraft(), State{})
	require.Len(t, page.Cards, 2)
	assert.Equal(t, "new", page.Cards[0].ID)
	assert.Equal(t, "old", page.Cards[1].ID)
	assert.False(t, page.Empty)
	assert.False(t, page.Dialog.Open)
}

func TestRenderPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	site := config.Default().Site
	out, err := r.RenderPage(BuildPage(site, []models.Property{sampleProperty()}, models.NewDraft(), State{}))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Casa X")
	assert.Contains(t, html, "R$ 450.000,00")
	assert.Contains(t, html, "Asa Sul, Brasília")
	assert.Contains(t, html, "+2")
	assert.Contains(t, html, "Entrar em Contato")
	assert.Contains(t, html, site.Name)
	assert.NotContains(t, html, "Nenhum imóvel cadastrado")
	assert.NotContains(t, html, "Adicionar Novo Imóvel")
}

func TestBuildDialogPriceInput(t *testing.T) {
	d := models.NewDraft()
	assert.Equal(t, "", buildDialog(d, State{}).Price)

	require.NoError(t, d.SetField(models.FieldPrice, "0"))
	assert.Equal(t, "0", buildDialog(d, State{}).Price)

	require.NoError(t, d.SetField(models.FieldPrice, "450000.5"))
	require.NoError(t, d.SetField(models.FieldBedrooms, "3"))
	dlg := buildDialog(d, State{})
	assert.Equal(t, "450000.5", dlg.Price)
	assert.Equal(t, "3", dlg.Bedrooms)
}

func TestRenderPageEmptyWithDialog(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	d := models.NewDraft()
	out, err := r.RenderPage(BuildPage(config.Default().Site, nil, d, State{DialogOpen: true, Alert: models.RequiredFieldsMessage}))
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "Nenhum imóvel cadastrado")
	assert.Contains(t, html, "Adicionar Novo Imóvel")
	assert.Contains(t, html, models.RequiredFieldsMessage)
}

func TestRenderPageEscapesUserText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	payload := `<script>alert(1)</script>`
	p := sampleProperty()
	p.Title = payload
	p.Description = payload
	d := models.NewDraft()
	d.Title = payload

	out, err := r.RenderPage(BuildPage(config.Default().Site, []models.Property{p}, d, State{DialogOpen: true}))
	require.NoError(t, err)
	html := string(out)

	// Inside a quoted attribute the minifier may drop the entities.
	assert.Contains(t, html, `value="`+payload+`"`)
	assert.Contains(t, html, "<h3>&lt;script>")
	assert.Contains(t, html, "<p class=description>&lt;script>")
	assert.NotContains(t, html, "<h3>"+payload)
	assert.NotContains(t, html, "<p class=description>"+payload)
}
