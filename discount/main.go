// Command discount draws the lab test discount banner into
// discount_banner.png in the working directory.
package main

import "github.com/rook-computer/bannermaker/internal/app"

func main() {
	if err := app.Run("discount"); err != nil {
		panic(err)
	}
}
