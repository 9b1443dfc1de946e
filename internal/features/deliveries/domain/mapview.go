package domain

import "fmt"

// LatLng is a map position.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is one order on the map.
type Marker struct {
	Position LatLng `json:"position"`
	Color    Color  `json:"color"`
	Hex      string `json:"hex"`
	Popup    Popup  `json:"popup"`
}

// Popup holds the fields shown when a marker is clicked.
type Popup struct {
	Name   string `json:"name"`
	Order  string `json:"order"`
	Weight string `json:"weight"`
	Agent  string `json:"agent"`
	Trip   string `json:"trip"`
}

// HeatPoint is one weighted point of the density overlay.
type HeatPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"`
}

// MapView is everything a map renderer needs.
type MapView struct {
	Center  LatLng       `json:"center"`
	Zoom    int          `json:"zoom"`
	Markers []Marker     `json:"markers"`
	Heat    []HeatPoint  `json:"heat,omitempty"`
	Legend  []AgentColor `json:"legend"`
}

const notAvailable = "N/A"

// BuildMap places every record with both coordinates. Records missing a
// coordinate never reach the markers or the density points; density points
// also need a weight. It returns ErrNoValidGeo when nothing can be placed.
func BuildMap(records []JoinedRecord, colors ColorMap, heatmap bool, zoom int) (*MapView, error) {
	view := &MapView{Zoom: zoom, Legend: colors.Entries()}

	var sumLat, sumLng float64
	for _, r := range records {
		if !r.HasCoordinates() {
			continue
		}
		pos := LatLng{Lat: *r.Latitude, Lng: *r.Longitude}
		sumLat += pos.Lat
		sumLng += pos.Lng

		c := colors.Color(r.Agent)
		view.Markers = append(view.Markers, Marker{
			Position: pos,
			Color:    c,
			Hex:      c.Hex(),
			Popup:    popupFor(r),
		})

		if heatmap && r.Weight != nil {
			view.Heat = append(view.Heat, HeatPoint{Lat: pos.Lat, Lng: pos.Lng, Weight: *r.Weight})
		}
	}

	if len(view.Markers) == 0 {
		return nil, ErrNoValidGeo
	}

	n := float64(len(view.Markers))
	view.Center = LatLng{Lat: sumLat / n, Lng: sumLng / n}
	return view, nil
}

func popupFor(r JoinedRecord) Popup {
	return Popup{
		Name:   r.Name,
		Order:  orNA(r.Order),
		Weight: fmt.Sprintf("%.2f kg", r.WeightOrZero()),
		Agent:  r.Agent,
		Trip:   orNA(r.Trip),
	}
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
