package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"go.uber.org/zap"

	"github.com/durable-fastener/durable-cms-backend/catalog"
	"github.com/durable-fastener/durable-cms-backend/config"
	"github.com/durable-fastener/durable-cms-backend/models"
)

var (
	sheetDark  = color.Color{Red: 33, Green: 37, Blue: 41}
	sheetMuted = color.Color{Red: 108, Green: 117, Blue: 125}
	sheetBand  = color.Color{Red: 233, Green: 236, Blue: 239}
)

// DatasheetService renders product datasheets as PDF.
type DatasheetService struct {
	products *ProductService
}

func NewDatasheetService(products *ProductService) *DatasheetService {
	return &DatasheetService{products: products}
}

// Render loads the product by slug and returns its datasheet bytes.
func (s *DatasheetService) Render(ctx context.Context, slug string) (*models.Product, []byte, error) {
	p, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	data, err := BuildDatasheet(p)
	if err != nil {
		config.Log.Error("[datasheet] failed to generate PDF", zap.String("slug", slug), zap.Error(err))
		return nil, nil, err
	}
	return p, data, nil
}

func sheetText(m pdf.Maroto, text string, size float64, style consts.Style, c color.Color, align consts.Align) {
	m.Text(text, props.Text{Size: size, Style: style, Color: c, Align: align})
}

func sheetHeading(m pdf.Maroto, title string) {
	m.Row(4, func() {})
	m.SetBackgroundColor(sheetBand)
	m.Row(7, func() {
		m.Col(12, func() {
			sheetText(m, title, 10, consts.Bold, sheetDark, consts.Left)
		})
	})
	m.SetBackgroundColor(color.NewWhite())
}

func sheetPair(m pdf.Maroto, label, value string) {
	m.Row(6, func() {
		m.Col(4, func() {
			sheetText(m, label, 9, consts.Normal, sheetMuted, consts.Left)
		})
		m.Col(8, func() {
			sheetText(m, value, 9, consts.Normal, sheetDark, consts.Left)
		})
	})
}

// BuildDatasheet lays out one product: identity, materials, specifications,
// dimensions and the available size/finish matrix.
func BuildDatasheet(p *models.Product) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 15, 20)

	m.Row(12, func() {
		m.Col(8, func() {
			sheetText(m, p.Name, 18, consts.Bold, sheetDark, consts.Left)
		})
		m.Col(4, func() {
			sheetText(m, "DURABLE FASTENER PVT. LTD.", 8, consts.Bold, sheetMuted, consts.Right)
		})
	})

	path := strings.Join(nonBlank([]string{p.Category, p.SubCategory, p.ChildCategory}), " / ")
	m.Row(6, func() {
		m.Col(12, func() {
			sheetText(m, path, 9, consts.Italic, sheetMuted, consts.Left)
		})
	})
	if p.ShortDescription != "" {
		m.Row(10, func() {
			m.Col(12, func() {
				sheetText(m, p.ShortDescription, 9, consts.Normal, sheetDark, consts.Left)
			})
		})
	}

	sheetHeading(m, "General")
	for _, row := range [][2]string{
		{"Head type", p.HeadType},
		{"Drive type", p.DriveType},
		{"Thread type", p.ThreadType},
	} {
		if row[1] != "" {
			sheetPair(m, row[0], row[1])
		}
	}
	for _, mat := range catalog.DecodeMaterials(p.Material) {
		if mat.Name == "" {
			continue
		}
		value := mat.Name
		if mat.Grades != "" {
			value = fmt.Sprintf("%s (Grade %s)", mat.Name, mat.Grades)
		}
		sheetPair(m, "Material", value)
	}

	if len(p.Specifications) > 0 {
		sheetHeading(m, "Specifications")
		for _, spec := range p.Specifications {
			sheetPair(m, spec.Key, spec.Value)
		}
	}

	if len(p.DimensionalSpecifications) > 0 {
		sheetHeading(m, "Dimensions")
		for _, d := range p.DimensionalSpecifications {
			label := d.Label
			if d.Symbol != "" {
				label = fmt.Sprintf("%s (%s)", d.Label, d.Symbol)
			}
			sheetPair(m, label, d.Value)
		}
	}

	variants := p.CatalogVariants()
	if len(variants) > 0 {
		sheetHeading(m, "Available Sizes")
		m.Row(6, func() {
			for _, h := range []string{"Diameter", "Length", "Finish"} {
				m.Col(4, func() {
					sheetText(m, h, 9, consts.Bold, sheetDark, consts.Left)
				})
			}
		})
		for _, v := range variants {
			m.Row(5, func() {
				for _, cell := range []string{v.Diameter, v.Length, v.Finish} {
					m.Col(4, func() {
						sheetText(m, cell, 8, consts.Normal, sheetDark, consts.Left)
					})
				}
			})
		}
	}

	m.Row(10, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			sheetText(m, "Specifications are indicative. Contact sales for certified drawings.", 7, consts.Normal, sheetMuted, consts.Left)
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render datasheet: %w", err)
	}
	return buf.Bytes(), nil
}
