// Package useragent holds the immutable, process-wide user-agent pools
// that engine adapters pick from when decorating outbound requests.
package useragent

import "math/rand/v2"

// desktop is the pool of common desktop/mobile browser user agents that
// Random draws from. The Engine interface has no default Headers
// implementation; each adapter picks a pool in its own Headers method.
var desktop = [10]string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.0 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:131.0) Gecko/20100101 Firefox/131.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 13_6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Edg/129.0.0.0",
	"Mozilla/5.0 (Linux; Android 13; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 13; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/129.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; WOW64; rv:131.0) Gecko/20100101 Firefox/131.0",
}

// noJS is the pool for engines that flag modern, JS-capable user agents as
// bots but still let obscure old devices through.
var noJS = [14]string{
	"Mozilla/5.0 (webOS/1.4.5; U; en-US) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.4.0; U; en-US) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.3.5; U; en-US) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/2.0.0; U; en-US) AppleWebKit/534.6 (KHTML, like Gecko) Version/1.0 Safari/534.6 Pre/2.0",
	"Mozilla/5.0 (webOS/2.1.0; U; en-US) AppleWebKit/534.6 (KHTML, like Gecko) Version/1.0 Safari/534.6 Pre/2.1",
	"Mozilla/5.0 (webOS/3.0.5; U; en-US) AppleWebKit/534.6 (KHTML, like Gecko) TouchPad/1.0",
	"Mozilla/5.0 (webOS/3.0.2; U; en-US) AppleWebKit/534.6 (KHTML, like Gecko) TouchPad/1.0",
	"Mozilla/5.0 (webOS/1.2.1; U; en-GB) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.4.0; U; fr-FR) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.4.1; U; de-DE) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.3.1; U; en-US) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/2.0.1; U; en-US) AppleWebKit/534.6 (KHTML, like Gecko) Version/1.0 Safari/534.6 Pre/2.0",
	"Mozilla/5.0 (webOS/1.4.5; U; en-US; Pixi) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
	"Mozilla/5.0 (webOS/1.4.5; U; en-US; Pre) AppleWebKit/532.2 (KHTML, like Gecko) Version/1.0 Safari/532.2 Pre/1.0",
}

// Random returns a random desktop user agent.
func Random() string {
	return desktop[rand.IntN(len(desktop))]
}

// RandomNoJS returns a random user agent from the no-JS pool, for engines
// that gate on JavaScript support.
func RandomNoJS() string {
	return noJS[rand.IntN(len(noJS))]
}
