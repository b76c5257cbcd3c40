package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/canopy-height-model/rasterdiv-research-poc/internal/properties"
)

// ListAOIs handles the UI for viewing the list of available areas of interest
func ListAOIs() {
	files, err := os.ReadDir(properties.RootPath() + "/data/geojsons")
	if err != nil {
		PrintError(fmt.Sprintf("Error reading geojsons folder: %s", err.Error()))
		return
	}

	PrintWarning("To add a new area of interest, add its '.geojson' file at 'data/geojsons' folder.")

	fmt.Printf("\n%sAvailable areas of interest:%s\n", ColorGreen, ColorReset)
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".geojson") {
			fmt.Printf("%s- %s%s\n", ColorGreen, strings.TrimSuffix(file.Name(), ".geojson"), ColorReset)
		}
	}
}
