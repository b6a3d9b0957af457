// Command membership draws the membership banner into membership_banner.png
// in the working directory.
package main

import "github.com/rook-computer/bannermaker/internal/app"

func main() {
	if err := app.Run("membership"); err != nil {
		panic(err)
	}
}
