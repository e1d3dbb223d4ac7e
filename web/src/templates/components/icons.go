package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// iconPaths holds the stroke paths of the inline icons, 24x24 viewBox.
var iconPaths = map[string][]string{
	"leaf":    {"M11 20A7 7 0 0 1 9.8 6.1C15.5 5 17 4.48 19 2c1 2 2 4.18 2 8 0 5.5-4.78 10-10 10Z", "M2 21c0-3 1.85-5.36 5.08-6C9.5 14.52 12 13 13 12"},
	"solar":   {"M12 2v2", "M12 20v2", "m4.93 4.93 1.41 1.41", "m17.66 17.66 1.41 1.41", "M2 12h2", "M20 12h2", "M12 8a4 4 0 1 0 0 8 4 4 0 0 0 0-8Z"},
	"recycle": {"M7 19H4.815a1.83 1.83 0 0 1-1.57-.881 1.785 1.785 0 0 1-.004-1.784L7.196 9.5", "M11 19h8.203a1.83 1.83 0 0 0 1.556-.89 1.784 1.784 0 0 0 0-1.775l-1.226-2.12", "m14 16-3 3 3 3", "M8.293 13.596 7.196 9.5 3.1 10.598", "m9.344 5.811 1.093-1.892A1.83 1.83 0 0 1 11.985 3a1.784 1.784 0 0 1 1.546.888l3.943 6.843", "m13.378 9.633 4.096 1.098 1.097-4.096"},
	"globe":   {"M12 2a10 10 0 1 0 0 20 10 10 0 0 0 0-20Z", "M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20", "M2 12h20"},
	"bag":     {"M6 2 3 6v14a2 2 0 0 0 2 2h14a2 2 0 0 0 2-2V6l-3-4Z", "M3 6h18", "M16 10a4 4 0 0 1-8 0"},
	"map-pin": {"M20 10c0 6-8 12-8 12s-8-6-8-12a8 8 0 0 1 16 0Z", "M12 7a3 3 0 1 0 0 6 3 3 0 0 0 0-6Z"},
	"mail":    {"M4 4h16a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H4a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2Z", "m22 6-10 7L2 6"},
	"phone":   {"M22 16.92v3a2 2 0 0 1-2.18 2 19.79 19.79 0 0 1-8.63-3.07 19.5 19.5 0 0 1-6-6 19.79 19.79 0 0 1-3.07-8.67A2 2 0 0 1 4.11 2h3a2 2 0 0 1 2 1.72c.13.96.36 1.9.7 2.81a2 2 0 0 1-.45 2.11L8.09 9.91a16 16 0 0 0 6 6l1.27-1.27a2 2 0 0 1 2.11-.45c.91.34 1.85.57 2.81.7A2 2 0 0 1 22 16.92Z"},
	"check":   {"M20 6 9 17l-5-5"},
	"shield":  {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10Z"},
	"arrow":   {"M5 12h14", "m12 5 7 7-7 7"},
	"up":      {"m18 15-6-6-6 6"},
}

// Icon renders a named inline SVG icon. Unknown names render nothing.
func Icon(name string, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}
	nodes := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class("icon " + class),
		Aria("hidden", "true"),
	}
	for _, d := range paths {
		nodes = append(nodes, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", nodes...)
}
