package repositoryImp

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"agrow/entities"
	"agrow/pkg/kb/repository"
)

type fileLoader struct{ path string }

// NewFileLoader reads reference data from path. The format follows the
// extension: .json, .yaml/.yml, .csv, .xlsx, .html/.htm.
func NewFileLoader(path string) repository.Loader { return &fileLoader{path: path} }

func (l *fileLoader) Load() ([]entities.Disease, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	var out []entities.Disease
	switch ext := strings.ToLower(filepath.Ext(l.path)); ext {
	case ".json":
		out, err = parseJSON(b)
	case ".yaml", ".yml":
		out, err = parseYAML(b)
	case ".csv":
		out, err = parseCSV(bytes.NewReader(b))
	case ".xlsx":
		out, err = parseXLSX(bytes.NewReader(b))
	case ".html", ".htm":
		out, err = parseHTML(bytes.NewReader(b))
	default:
		return nil, fmt.Errorf("unsupported reference data format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(l.path), err)
	}
	return out, nil
}

// Static serves a fixed table; used for tests and embedded defaults.
type Static []entities.Disease

func (s Static) Load() ([]entities.Disease, error) { return clean(s), nil }

func parseJSON(b []byte) ([]entities.Disease, error) {
	var ds []entities.Disease
	if err := json.Unmarshal(b, &ds); err != nil {
		return nil, err
	}
	return clean(ds), nil
}

func parseYAML(b []byte) ([]entities.Disease, error) {
	var ds []entities.Disease
	if err := yaml.Unmarshal(b, &ds); err != nil {
		return nil, err
	}
	return clean(ds), nil
}

// clean trims text fields, normalises status and drops entries without a
// crop or disease name since they can never match.
func clean(in []entities.Disease) []entities.Disease {
	out := make([]entities.Disease, 0, len(in))
	for _, d := range in {
		d.Crop = strings.TrimSpace(d.Crop)
		d.Name = strings.TrimSpace(d.Name)
		if d.Crop == "" || d.Name == "" {
			continue
		}
		d.ScientificName = strings.TrimSpace(d.ScientificName)
		if strings.TrimSpace(string(d.Status)) != "" {
			d.Status = entities.ParseStatus(string(d.Status))
		} else {
			d.Status = ""
		}
		d.Advice = strings.TrimSpace(d.Advice)
		d.Treatment.Organic = strings.TrimSpace(d.Treatment.Organic)
		d.Treatment.Chemical = strings.TrimSpace(d.Treatment.Chemical)
		out = append(out, d)
	}
	return out
}

// --- tabular formats (csv, xlsx, html) share one header mapping ---

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type columns struct {
	id, crop, name, sci, status, confMin, confMax, confRange, symptoms, organic, chemical, advice int
}

func mapHeader(head []string) (columns, error) {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}
	c := columns{
		id:        findAny("id", "code"),
		crop:      findAny("crop", "plant", "crop name"),
		name:      findAny("name", "disease", "condition", "disease name"),
		sci:       findAny("scientificName", "scientific name", "latin name", "pathogen"),
		status:    findAny("status", "severity"),
		confMin:   findAny("confidence min", "confidenceMin", "min confidence"),
		confMax:   findAny("confidence max", "confidenceMax", "max confidence"),
		confRange: findAny("confidence range", "confidenceRange"),
		symptoms:  findAny("symptoms", "symptom"),
		organic:   findAny("treatmentOrganic", "treatment organic", "organic treatment", "organic"),
		chemical:  findAny("treatmentChemical", "treatment chemical", "chemical treatment", "chemical"),
		advice:    findAny("advice", "recommendation"),
	}
	if c.crop == -1 || c.name == -1 {
		return c, fmt.Errorf("missing required columns. Found headers: %v. Need at least: crop, name", head)
	}
	return c, nil
}

func (c columns) row(rec []string) entities.Disease {
	get := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}
	d := entities.Disease{
		ID:             get(c.id),
		Crop:           get(c.crop),
		Name:           get(c.name),
		ScientificName: get(c.sci),
		Status:         entities.Status(get(c.status)),
		Symptoms:       splitList(get(c.symptoms)),
		Treatment:      entities.Treatment{Organic: get(c.organic), Chemical: get(c.chemical)},
		Advice:         get(c.advice),
	}
	lo, _ := strconv.ParseFloat(get(c.confMin), 64)
	hi, _ := strconv.ParseFloat(get(c.confMax), 64)
	if r := get(c.confRange); r != "" {
		if a, b, ok := strings.Cut(r, "-"); ok {
			lo, _ = strconv.ParseFloat(strings.TrimSpace(a), 64)
			hi, _ = strconv.ParseFloat(strings.TrimSpace(b), 64)
		}
	}
	d.ConfidenceRange = [2]float64{lo, hi}
	return d
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	sep := ";"
	if !strings.Contains(s, ";") && strings.Contains(s, "|") {
		sep = "|"
	}
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fromRows(rows [][]string) ([]entities.Disease, error) {
	if len(rows) == 0 {
		return nil, errors.New("no header row")
	}
	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}
	ds := make([]entities.Disease, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		ds = append(ds, cols.row(rec))
	}
	return clean(ds), nil
}

func parseCSV(r io.Reader) ([]entities.Disease, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		rows = append(rows, rec)
	}
	return fromRows(rows)
}

// parseXLSX reads the first sheet of the workbook.
func parseXLSX(r io.Reader) ([]entities.Disease, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()
	sheet := x.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// parseHTML reads the first <table>; header cells may be th or td.
func parseHTML(r io.Reader) ([]entities.Disease, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("no table found")
	}
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var rec []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			rec = append(rec, strings.Join(strings.Fields(cell.Text()), " "))
		})
		if len(rec) > 0 {
			rows = append(rows, rec)
		}
	})
	return fromRows(rows)
}
