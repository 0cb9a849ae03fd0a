package input

// nameToIntent maps config action names to intents
var nameToIntent = map[string]Intent{
	"up":      IntentUp,
	"down":    IntentDown,
	"left":    IntentLeft,
	"right":   IntentRight,
	"mine":    IntentMine,
	"pause":   IntentPause,
	"quit":    IntentQuit,
	"restart": IntentRestart,
}

var intentToName = func() map[Intent]string {
	m := make(map[Intent]string, len(nameToIntent))
	for name, intent := range nameToIntent {
		m[intent] = name
	}
	return m
}()

// IntentByName resolves a config action name
func IntentByName(name string) (Intent, bool) {
	i, ok := nameToIntent[name]
	return i, ok
}
