// seed genera un script SQL para poblar el catálogo de componentes a partir
// del CSV exportado por el ERP legado (codificado en ISO-8859-1, separado por ';').
//
// Uso: go run ./cmd/seed [ruta/componentes.csv]
// Por defecto busca componentes.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_components.sql
//
// Columnas esperadas: part_code;name;current_stock;monthly_required
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type componentRow struct {
	partCode string
	name     string
	stock    int64
	monthly  int64
}

func main() {
	csvPath := "componentes.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El ERP exporta en Latin-1; convertir a UTF-8 al vuelo
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	// Deduplicar por part_code; la última fila gana (el export repite códigos)
	byCode := make(map[string]componentRow)
	for i, rec := range records {
		if i == 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "part_code") {
			continue // encabezado
		}
		code := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" {
			continue
		}
		stock, err := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if err != nil || stock < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: stock inválido %q, se omite\n", i+1, rec[2])
			continue
		}
		monthly, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
		if err != nil || monthly < 0 {
			fmt.Fprintf(os.Stderr, "Fila %d: requerido mensual inválido %q, se omite\n", i+1, rec[3])
			continue
		}
		byCode[code] = componentRow{partCode: code, name: name, stock: stock, monthly: monthly}
	}

	if len(byCode) == 0 {
		fmt.Fprintln(os.Stderr, "El CSV no contiene filas válidas")
		os.Exit(1)
	}

	// Ordenar por part_code para salida estable
	var codes []string
	for c := range byCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_components.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de componentes\n")
	out.WriteString("-- Generado desde el export del ERP (componentes.csv)\n\n")

	out.WriteString("INSERT INTO components (id, part_code, component_name, current_stock, monthly_required_quantity) VALUES\n")
	for i, c := range codes {
		row := byCode[c]
		sep := ","
		if i == len(codes)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  (gen_random_uuid(), '%s', '%s', %d, %d)%s\n",
			escapeSQL(row.partCode), escapeSQL(row.name), row.stock, row.monthly, sep)
	}
	out.WriteString("ON CONFLICT (part_code) DO UPDATE SET\n")
	out.WriteString("  component_name = EXCLUDED.component_name,\n")
	out.WriteString("  current_stock = EXCLUDED.current_stock,\n")
	out.WriteString("  monthly_required_quantity = EXCLUDED.monthly_required_quantity,\n")
	out.WriteString("  updated_at = now();\n")

	fmt.Printf("Generado %s: %d componentes\n", outPath, len(codes))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
