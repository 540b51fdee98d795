package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// PrintBanner displays the ASCII art startup banner.
func PrintBanner() {
	fmt.Println()

	cyan := color.New(color.FgCyan, color.Bold)
	hiMagenta := color.New(color.FgHiMagenta, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	cyan.Println("╔══════════════════════════════════════════════════════════╗")

	cyan.Print("║  ")
	hiMagenta.Print("██╗  ██╗██╗   ██╗██╗     ██╗███╗   ██╗ █████╗")
	dim.Print("          ")
	cyan.Println(" ║")

	cyan.Print("║  ")
	hiMagenta.Print("██║ ██╔╝██║   ██║██║     ██║████╗  ██║██╔══██╗")
	dim.Print("         ")
	cyan.Println(" ║")

	cyan.Print("║  ")
	hiMagenta.Print("█████╔╝ ██║   ██║██║     ██║██╔██╗ ██║███████║")
	dim.Print("         ")
	cyan.Println(" ║")

	cyan.Print("║  ")
	hiMagenta.Print("██╔═██╗ ██║   ██║██║     ██║██║╚██╗██║██╔══██║")
	dim.Print("         ")
	cyan.Println(" ║")

	cyan.Print("║  ")
	hiMagenta.Print("██║  ██╗╚██████╔╝███████╗██║██║ ╚████║██║  ██║")
	dim.Print("         ")
	cyan.Println(" ║")

	cyan.Print("║  ")
	hiMagenta.Print("╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝")
	dim.Print("         ")
	cyan.Println(" ║")

	cyan.Println("╠══════════════════════════════════════════════════════════╣")

	cyan.Print("║  ")
	yellow.Print("🍜 KULINA.AI")
	dim.Print("  │  ")
	white.Print("AI-POWERED FOOD ORDERING")
	dim.Print("  │  ")
	white.Print("v1.0.0")
	dim.Print("     ")
	cyan.Println("║")

	cyan.Println("╚══════════════════════════════════════════════════════════╝")

	fmt.Println()
}
