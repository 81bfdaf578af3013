package tilemap

// defaultMaze is the 28x31 reference layout.
//
//	#  wall           .  pellet        o  power pellet
//	-  house door     _  house floor   T  tunnel mouth
//	   (space) empty corridor
var defaultMaze = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #______# ##.######",
	"T     .   #______#   .     T",
	"######.## #______# ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// DefaultLayout returns a copy of the reference layout rows.
func DefaultLayout() []string {
	out := make([]string, len(defaultMaze))
	copy(out, defaultMaze)
	return out
}
