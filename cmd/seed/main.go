// seed genera un script SQL con el usuario administrador inicial y un catálogo
// de demostración de kayaks y remos.
//
// Uso: go run ./cmd/seed -admin-user admin -admin-pass <password>
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
//
// El hash bcrypt se calcula aquí para no dejar nunca passwords en claro en el
// repositorio ni en los scripts generados.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type demoProduct struct {
	code     string
	name     string
	color    string
	category string
	location string
	minStock int64
}

var demoCatalog = []demoProduct{
	{"KAY-S1-AMA", "Kayak Simples", "amarelo", "kayak", "galpão A", 2},
	{"KAY-S1-VRM", "Kayak Simples", "vermelho", "kayak", "galpão A", 2},
	{"KAY-D1-AZU", "Kayak Duplo", "azul", "kayak", "galpão A", 1},
	{"KAY-D1-VRD", "Kayak Duplo", "verde", "kayak", "galpão B", 1},
	{"REM-ALU-PTO", "Remo Alumínio", "preto", "remo", "estante 1", 4},
	{"REM-FIB-BCO", "Remo Fibra", "branco", "remo", "estante 1", 2},
	{"COL-ADU-LAR", "Colete Adulto", "laranja", "colete", "estante 2", 6},
	{"COL-INF-LAR", "Colete Infantil", "laranja", "colete", "estante 2", 4},
}

func main() {
	adminUser := flag.String("admin-user", "admin", "nombre del usuario administrador")
	adminPass := flag.String("admin-pass", "", "password del administrador (requerido)")
	withDemo := flag.Bool("demo", true, "incluir catálogo de demostración")
	flag.Parse()

	if strings.TrimSpace(*adminPass) == "" {
		fmt.Fprintln(os.Stderr, "falta -admin-pass")
		os.Exit(1)
	}
	if len(*adminPass) < 6 {
		fmt.Fprintln(os.Stderr, "el password debe tener al menos 6 caracteres")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPass), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Usuario administrador inicial y catálogo de demostración\n")
	out.WriteString("-- Generado por cmd/seed\n\n")

	out.WriteString("-- 1. Administrador\n")
	fmt.Fprintf(out, "INSERT INTO users (id, username, password_hash, role, status)\nVALUES ('%s', '%s', '%s', 'admin', 'active')\n",
		uuid.New().String(), escapeSQL(*adminUser), string(hash))
	out.WriteString("ON CONFLICT (username) DO NOTHING;\n\n")

	if *withDemo {
		out.WriteString("-- 2. Catálogo de demostración\n")
		for _, p := range demoCatalog {
			fmt.Fprintf(out, "INSERT INTO products (id, code, name, color, category, location, quantity, min_stock, status)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', '%s', 0, %d, 'active')\n",
				uuid.New().String(), p.code, escapeSQL(p.name), escapeSQL(p.color),
				escapeSQL(p.category), escapeSQL(p.location), p.minStock)
			out.WriteString("ON CONFLICT (code) DO NOTHING;\n")
		}
	}

	fmt.Printf("Generado %s: admin '%s', %d productos\n", outPath, *adminUser, len(demoCatalog))
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
