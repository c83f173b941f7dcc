package aggregate

import "contexto/pkg/console"

func reportAdded(c *console.Console, relPath string) {
	c.Printf("Agregado: %s", relPath)
}

func reportReadError(c *console.Console, relPath string, err error) {
	c.Printf("Error leyendo %s: %v", relPath, err)
}

func reportMissingTarget(c *console.Console, target string) {
	c.Printf("ERROR: No encuentro la carpeta '%s'. Asegúrate de ejecutar esto desde la raíz del proyecto.", target)
}

func reportDone(c *console.Console, message string) {
	c.Printf("\n%s", message)
}

// Menu collection lines.

func reportMenuStart(c *console.Console) {
	c.Printf("--- Recopilando solo páginas del Menú ---")
}

func reportMenuAdded(c *console.Console, relPath string) {
	c.Printf("✅ Agregado: %s", relPath)
}

func reportMenuMissing(c *console.Console, relPath string) {
	c.Warnf("⚠️  No existe (¿Aún no lo creas?): %s", relPath)
}

func reportMenuError(c *console.Console, relPath string, err error) {
	c.Warnf("❌ Error en %s: %v", relPath, err)
}

func reportMenuDone(c *console.Console, output string) {
	c.Printf("%s", menuFooter)
	c.Printf("🎉 Archivo creado: %s", output)
}
