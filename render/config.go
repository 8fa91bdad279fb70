package render

// Config holds the renderer host settings, read from yaml.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Frames string `yaml:"frames"`
		}
	} `yaml:"mqtt"`
	Animation struct {
		TickMs int `yaml:"tickMs"`
	} `yaml:"animation"`
}
