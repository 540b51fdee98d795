// Package ui provides colorized console output for the KULINA.AI server.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)

	successText = color.New(color.FgGreen, color.Bold)
	errorText   = color.New(color.FgRed)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
)

// PrintServerInfo logs general server information.
func PrintServerInfo(msg string) {
	infoBadge.Print("[KULINA]")
	fmt.Print(" ")
	infoText.Println(msg)
}

// PrintProviderReady logs a resolved provider credential for one feature.
func PrintProviderReady(feature, providerName string) {
	successBadge.Print(" READY ")
	fmt.Print(" ")
	accentText.Print(feature)
	mutedText.Print(" → ")
	successText.Println(providerName)
}

// PrintStartupError logs a fatal startup problem.
func PrintStartupError(msg string) {
	errorBadge.Print(" ERROR ")
	fmt.Print(" ")
	errorText.Println(msg)
}

// PrintEndpoints lists the main API surface after startup.
func PrintEndpoints(addr string) {
	fmt.Println()
	successText.Printf("🍽️  KULINA.AI is running at http://%s\n", addr)
	mutedText.Println("   Endpoints:")
	mutedText.Println("   • POST /api/ai/chatbot                     - Customer chatbot assistant")
	mutedText.Println("   • POST /api/ai/analyze-reviews             - Review analysis (admin)")
	mutedText.Println("   • POST /api/ai/generate-promo              - Promo caption generator (admin)")
	mutedText.Println("   • POST /api/ai/menu-recommendations        - Menu recommendations")
	mutedText.Println("   • POST /api/ai/price-stock-recommendations - Price and stock advice (admin)")
	mutedText.Println("   • GET  /api/menus                          - Menu catalog")
	mutedText.Println("   • GET  /health                             - Health check")
	fmt.Println()
}

// PrintShutdown logs the graceful shutdown message.
func PrintShutdown() {
	fmt.Println()
	infoText.Println("⏳ Shutting down gracefully...")
}

// PrintStopped logs the final stop message.
func PrintStopped() {
	successText.Println("✅ Server stopped. Goodbye!")
}
