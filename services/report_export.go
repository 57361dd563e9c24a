package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// ReportFile is a rendered export ready to be written to the response
type ReportFile struct {
	Body        []byte
	ContentType string
	Extension   string
}

// RenderReport renders rows (a slice of csv-tagged structs) in the requested
// format. The csv tags define the columns for the CSV and PDF renditions.
func RenderReport(format, title string, rows any, generatedAt time.Time) (ReportFile, error) {
	switch format {
	case models.FormatJSON:
		body, err := json.MarshalIndent(map[string]any{
			"report":       title,
			"generated_at": generatedAt,
			"rows":         rows,
		}, "", "  ")
		if err != nil {
			return ReportFile{}, fmt.Errorf("render json: %w", err)
		}
		return ReportFile{Body: body, ContentType: "application/json", Extension: "json"}, nil

	case models.FormatCSV, "":
		body, err := gocsv.MarshalBytes(rows)
		if err != nil {
			return ReportFile{}, fmt.Errorf("render csv: %w", err)
		}
		return ReportFile{Body: body, ContentType: "text/csv", Extension: "csv"}, nil

	case models.FormatPDF:
		table, err := gocsv.MarshalBytes(rows)
		if err != nil {
			return ReportFile{}, fmt.Errorf("render pdf table: %w", err)
		}
		records, err := csv.NewReader(bytes.NewReader(table)).ReadAll()
		if err != nil {
			return ReportFile{}, fmt.Errorf("read pdf table: %w", err)
		}
		var header []string
		var content [][]string
		if len(records) > 0 {
			header, content = records[0], records[1:]
		}
		buf, err := reportPDF(title, header, content, generatedAt)
		if err != nil {
			return ReportFile{}, fmt.Errorf("render pdf: %w", err)
		}
		return ReportFile{Body: buf.Bytes(), ContentType: "application/pdf", Extension: "pdf"}, nil
	}
	return ReportFile{}, fmt.Errorf("unsupported export format %q", format)
}

func reportPDF(title string, header []string, content [][]string, generatedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(15, 15, 15)

	darkGreen := color.Color{Red: 34, Green: 84, Blue: 61}
	mutedGray := color.Color{Red: 121, Green: 119, Blue: 109}
	stripe := color.Color{Red: 240, Green: 244, Blue: 238}

	m.Row(12, func() {
		m.Col(12, func() {
			m.Text("NAVEDHANA", props.Text{
				Size:  18,
				Style: consts.Bold,
				Color: darkGreen,
			})
		})
	})

	m.Row(8, func() {
		m.Col(8, func() {
			m.Text(title, props.Text{
				Size:  12,
				Style: consts.Bold,
			})
		})
		m.Col(4, func() {
			m.Text(generatedAt.Format("Jan 02, 2006 15:04 MST"), props.Text{
				Size:  8,
				Color: mutedGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(6, func() {})

	if len(header) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("No data for the selected period.", props.Text{Size: 9, Color: mutedGray})
			})
		})
	} else {
		m.TableList(header, content, props.TableList{
			HeaderProp: props.TableListContent{
				Size:  8,
				Style: consts.Bold,
			},
			ContentProp: props.TableListContent{
				Size: 8,
			},
			Align:                consts.Left,
			AlternatedBackground: &stripe,
			HeaderContentSpace:   1,
		})
	}

	buf, err := m.Output()
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
