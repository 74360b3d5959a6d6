package cart

// Demo is an installable demo cartridge.
type Demo struct {
	Name string
	Data []byte
}

const demoSprite = `-- title: sprite demo
-- author: tinycart
-- script: lua

t=0

function TIC()
 cls(0)
 for i=0,15 do
  c=(t//4+i)%16
  rect(i*15,0,15,136,c)
 end
 print("SPRITE DEMO",88,64,12)
 t=t+1
end
`

const demoMusic = `-- title: music demo
-- author: tinycart
-- script: lua

function TIC()
 cls(0)
 print("MUSIC DEMO",92,64,12)
 if btnp(4) then music(0) end
end
`

const demoFont = `-- title: font demo
-- author: tinycart
-- script: lua

function TIC()
 cls(0)
 for i=0,7 do
  print("HELLO WORLD!",60,20+i*12,i+8)
 end
end
`

// Demos returns the demo cartridges installed by the demo command, encoded
// and ready to save.
func Demos() []Demo {
	build := func(code string) []byte {
		c := Default()
		c.Code = code
		return c.Save()
	}
	return []Demo{
		{Name: "spritedemo.cart", Data: build(demoSprite)},
		{Name: "musicdemo.cart", Data: build(demoMusic)},
		{Name: "fontdemo.cart", Data: build(demoFont)},
	}
}
