package console

import "github.com/tinycart/tinycart/internal/command"

// apiTable is the scripting API reference shown by `help api`. It is
// sorted by name at console construction.
var apiTable = []command.APIItem{
	{Name: "btn", Def: "btn(id) -> pressed", Help: "get gamepad button state"},
	{Name: "btnp", Def: "btnp(id, [hold], [period]) -> pressed", Help: "get gamepad button press"},
	{Name: "circ", Def: "circ(x, y, radius, color)", Help: "draw a filled circle"},
	{Name: "circb", Def: "circb(x, y, radius, color)", Help: "draw a circle border"},
	{Name: "cls", Def: "cls([color])", Help: "clear the screen"},
	{Name: "exit", Def: "exit()", Help: "interrupt the program and return to console"},
	{Name: "font", Def: "font(text, x, y, [transcolor], [w], [h]) -> width", Help: "print text with the sprite font"},
	{Name: "line", Def: "line(x0, y0, x1, y1, color)", Help: "draw a line"},
	{Name: "map", Def: "map([x], [y], [w], [h], [sx], [sy])", Help: "draw the map region"},
	{Name: "memcpy", Def: "memcpy(dst, src, size)", Help: "copy a RAM range"},
	{Name: "memset", Def: "memset(addr, value, size)", Help: "fill a RAM range"},
	{Name: "music", Def: "music([track], [frame], [row], [loop])", Help: "play a music track"},
	{Name: "peek", Def: "peek(addr) -> value", Help: "read a byte from RAM"},
	{Name: "pix", Def: "pix(x, y, [color]) -> color", Help: "get or set a pixel"},
	{Name: "poke", Def: "poke(addr, value)", Help: "write a byte to RAM"},
	{Name: "print", Def: "print(text, [x], [y], [color], [fixed], [scale]) -> width", Help: "print text with the system font"},
	{Name: "rect", Def: "rect(x, y, w, h, color)", Help: "draw a filled rectangle"},
	{Name: "rectb", Def: "rectb(x, y, w, h, color)", Help: "draw a rectangle border"},
	{Name: "sfx", Def: "sfx(id, [note], [duration], [channel], [volume], [speed])", Help: "play a sound effect"},
	{Name: "spr", Def: "spr(id, x, y, [transcolor], [scale], [flip], [rotate], [w], [h])", Help: "draw a sprite"},
	{Name: "time", Def: "time() -> milliseconds", Help: "milliseconds since program start"},
	{Name: "trace", Def: "trace(message, [color])", Help: "print a message to the console"},
	{Name: "tri", Def: "tri(x0, y0, x1, y1, x2, y2, color)", Help: "draw a filled triangle"},
}
