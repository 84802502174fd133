// Package catalog loads the bundled product dataset. The dump comes
// straight from the supplier's price list, so the row keys are Russian
// and rows may be incomplete.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/solutionam/partstore/internal/core/domain"
	"github.com/solutionam/partstore/internal/core/port"
)

var _ port.CatalogSource = (*FileSource)(nil)

const (
	defaultCountry = "China"
	defaultType    = "Lighting"
	defaultName    = "No name"

	placeholderImages = 20
)

// rawRow mirrors the supplier dump field names.
type rawRow struct {
	PartNumber  string `json:"Каталожный номер"`
	Description string `json:"Описание"`
	Price       string `json:"Цена"`
	Quantity    string `json:"Кол-во"`
	Brand       string `json:"Бренд"`
}

type FileSource struct {
	path string
}

func NewFileSource(path string) FileSource {
	return FileSource{path}
}

// Load reads and maps the dataset. Rows without a part number or price
// are silently dropped: the dump has no runtime write path, so a
// permissive policy is enough.
func (s FileSource) Load(ctx context.Context) ([]domain.Product, error) {
	const op = "FileSource.Load"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("catalog loaded", "path", s.path, "nProducts", len(ps))
	return ps, nil
}

func parse(data []byte) ([]domain.Product, error) {
	var rows []rawRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	var ps []domain.Product
	for i, row := range rows {
		p, ok := mapRow(row, i)
		if !ok {
			continue
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func mapRow(row rawRow, index int) (domain.Product, bool) {
	if row.PartNumber == "" || row.Price == "" {
		return domain.Product{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row.Price), 64)
	if err != nil {
		price = 0
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(row.Quantity))
	if err != nil {
		quantity = 0
	}

	name := row.Description
	if name == "" {
		name = defaultName
	}

	brand := row.Brand
	if brand == "" {
		brand = "Unknown Brand"
	}

	return domain.Product{
		ID:          index + 1,
		Name:        name,
		Price:       price,
		Country:     defaultCountry,
		Type:        defaultType,
		Brand:       brand,
		Description: fmt.Sprintf("Part No: %s. %s", row.PartNumber, row.Description),
		ImageID:     fmt.Sprintf("product-%d", index%placeholderImages+1),
		ComingSoon:  quantity == 0,
	}, true
}
