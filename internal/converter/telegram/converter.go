package converter

import (
	"bytes"
	"embed"
	"text/template"

	"github.com/you-humble/repair-workshop/internal/model"
)

var (
	//go:embed templates/low_stock.tmpl
	lowStockFS       embed.FS
	lowStockTemplate = template.Must(template.ParseFS(lowStockFS, "templates/low_stock.tmpl"))
)

type lowStockNotification struct {
	PartID     string
	PartName   string
	Quantity   int64
	Threshold  int64
	OccurredAt string
}

func BuildLowStock(alert model.LowStockAlert) (string, error) {
	n := lowStockNotification{
		PartID:     alert.PartID.String(),
		PartName:   alert.PartName,
		Quantity:   alert.Quantity,
		Threshold:  alert.Threshold,
		OccurredAt: alert.OccurredAt.Format("2006-01-02 15:04"),
	}

	var buf bytes.Buffer
	if err := lowStockTemplate.Execute(&buf, n); err != nil {
		return "", err
	}

	return buf.String(), nil
}
