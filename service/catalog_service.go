package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"sort"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"merch-store-backend/inventory"
	"merch-store-backend/models"
	"merch-store-backend/repository"
)

// CatalogServiceInterface defines the contract for catalog export
type CatalogServiceInterface interface {
	GeneratePDF(ctx context.Context, size string) ([]byte, error)
}

// CatalogService renders the product catalog with live availability to
// HTML and prints it to PDF with headless Chrome.
type CatalogService struct {
	products  repository.ProductRepositoryInterface
	inventory repository.InventoryRepositoryInterface
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products repository.ProductRepositoryInterface, inv repository.InventoryRepositoryInterface) *CatalogService {
	return &CatalogService{products: products, inventory: inv}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// catalogRow is one printable line: a product, or one style of a t-shirt.
type catalogRow struct {
	Name   string
	Style  string
	Price  float64
	Counts []sizeCount
}

type sizeCount struct {
	Size  string
	Count int
}

const catalogTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; padding: 24px; }
  h1 { font-size: 20px; }
  .generated { color: #666; font-size: 11px; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; }
  th { background: #f2f2f2; }
  td.count { text-align: right; }
  td.zero { color: #bbb; }
</style>
</head>
<body>
<h1>Product Catalog{{if .Size}} — size {{.Size}}{{end}}</h1>
<div class="generated">Generated {{.GeneratedAt}}</div>
<table>
  <tr>
    <th>Product</th><th>Style</th><th>Price</th>
    {{range .Sizes}}<th>{{.}}</th>{{end}}
  </tr>
  {{range .Rows}}
  <tr>
    <td>{{.Name}}</td><td>{{.Style}}</td><td>{{printf "%.2f" .Price}}</td>
    {{range .Counts}}<td class="count{{if eq .Count 0}} zero{{end}}">{{.Count}}</td>{{end}}
  </tr>
  {{end}}
</table>
</body>
</html>`

// RenderCatalogHTML builds the printable catalog page. When size is
// non-empty only that availability column is rendered.
func (s *CatalogService) RenderCatalogHTML(ctx context.Context, size string) (string, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return "", err
	}
	inv, err := s.inventory.Get(ctx)
	if err != nil {
		return "", err
	}

	sizes := inventory.DefaultSizes
	if size != "" {
		sizes = []string{size}
	}

	var rows []catalogRow
	for _, p := range products {
		if p.Type == models.ProductTypeTshirt {
			styles := p.Styles
			if len(styles) == 0 {
				styles = inventory.DefaultTshirtStyles
			}
			for _, style := range styles {
				rows = append(rows, catalogRow{
					Name:   p.Name,
					Style:  style.Value,
					Price:  p.Price,
					Counts: countsFor(&inv, p.ID, style.Value, sizes),
				})
			}
			continue
		}
		rows = append(rows, catalogRow{
			Name:   p.Name,
			Price:  p.Price,
			Counts: countsFor(&inv, p.ID, "", sizes),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	tmpl, err := template.New("catalog").Parse(catalogTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse catalog template: %w", err)
	}

	data := struct {
		Size        string
		GeneratedAt string
		Sizes       []string
		Rows        []catalogRow
	}{
		Size:        size,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Sizes:       sizes,
		Rows:        rows,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute catalog template: %w", err)
	}
	return buf.String(), nil
}

func countsFor(inv *models.Inventory, productID, style string, sizes []string) []sizeCount {
	counts := make([]sizeCount, 0, len(sizes))
	for _, size := range sizes {
		counts = append(counts, sizeCount{Size: size, Count: inventory.Level(inv, productID, style, size)})
	}
	return counts
}

// GeneratePDF renders the catalog HTML and prints it with headless
// Chrome. Requires a local Chrome/Chromium install.
func (s *CatalogService) GeneratePDF(ctx context.Context, size string) ([]byte, error) {
	htmlContent, err := s.RenderCatalogHTML(ctx, size)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		log.Printf("🖨️ GeneratePDF: using chrome at %s", chromePath)
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	dataURL := "data:text/html;charset=utf-8," + url.PathEscape(htmlContent)

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27). // A4 in inches
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
