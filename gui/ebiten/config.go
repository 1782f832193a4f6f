package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/axial/resources"
)

const geometryFile = "window"

// onWindowOpen restores the window geometry saved by onWindowClose(). a
// missing geometry file is not an error
func onWindowOpen() (windowGeometry, error) {
	var geom windowGeometry

	s, err := resources.Read(geometryFile)
	if err != nil {
		return geom, err
	}
	if s == "" {
		return geom, nil
	}

	_, err = fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return windowGeometry{}, fmt.Errorf("%s is malformed: %w", geometryFile, err)
	}

	if geom.valid() {
		ebiten.SetWindowPosition(geom.x, geom.y)
		ebiten.SetWindowSize(geom.w, geom.h)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write(geometryFile, s)
}
