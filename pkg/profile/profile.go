// Package profile holds the fixed configuration of each dump variant.
package profile

import "path/filepath"

// Profile is the static configuration of one aggregation run.
type Profile struct {
	Name          string   // Command name the profile belongs to.
	Output        string   // Output file, relative to the working directory.
	Target        string   // Subdirectory of the root where the walk starts; empty walks the root.
	Banner        string   // Written once before any file block.
	Extensions    []string // Allowed extensions, leading dot included.
	IgnoreDirs    []string // Directory base names pruned from the walk.
	IgnoreFiles   []string // File base names excluded regardless of extension.
	Files         []string // Explicit file list, used by the menu collector only.
	RequireTarget bool     // Report and stop when Target does not exist.
	Done          string   // Completion message printed after the walk.
}

// Built-in profile names.
const (
	ContextoName = "contexto"
	PagesName    = "pages"
	MenuName     = "menu"
)

// Contexto dumps the whole project, skipping dependency and build folders.
func Contexto() Profile {
	return Profile{
		Name:   ContextoName,
		Output: "contexto_completo.txt",
		Banner: "--- CONTEXTO DEL PROYECTO: GESTION-PALTA ---\n" +
			"Este archivo contiene todo el código fuente relevante.\n\n",
		Extensions:  []string{".js", ".jsx", ".css", ".html", ".json"},
		IgnoreDirs:  []string{"node_modules", ".git", "dist", "build", "assets", "public"},
		IgnoreFiles: []string{"package-lock.json", "yarn.lock"},
		Done:        "¡Listo! Archivo 'contexto_completo.txt' creado exitosamente.",
	}
}

// Pages dumps only the application views under src/pages.
func Pages() Profile {
	return Profile{
		Name:   PagesName,
		Output: "pages_completo.txt",
		Target: filepath.Join("src", "pages"),
		Banner: "--- CONTEXTO ESPECIFICO: CARPETA PAGES ---\n" +
			"Aquí están solo las vistas/páginas de la aplicación.\n\n",
		Extensions:    []string{".js", ".jsx", ".css"},
		RequireTarget: true,
		Done:          "¡Listo! Archivo 'pages_completo.txt' creado con éxito.",
	}
}

// Menu collects the pages reachable from the sidebar, in menu order.
func Menu() Profile {
	return Profile{
		Name:   MenuName,
		Output: "archivos_del_menu.txt",
		Files: []string{
			"src/pages/Dashboard.jsx",

			"src/pages/Cosechas.jsx",
			"src/pages/Labores.jsx",
			"src/pages/Riego.jsx",
			"src/pages/Bodega.jsx",

			"src/pages/OfertasComerciales.jsx",
			"src/pages/Gastos.jsx",
			"src/pages/CuentasSocios.jsx",
			"src/pages/Bitacora.jsx",

			"src/pages/Clientes.jsx",
			"src/pages/Proveedores.jsx",
			"src/pages/Categorias.jsx",
			"src/pages/ConfiguracionCampo.jsx",
		},
	}
}

// Builtin returns the built-in profile with the given name.
func Builtin(name string) (Profile, bool) {
	switch name {
	case ContextoName:
		return Contexto(), true
	case PagesName:
		return Pages(), true
	case MenuName:
		return Menu(), true
	}
	return Profile{}, false
}
