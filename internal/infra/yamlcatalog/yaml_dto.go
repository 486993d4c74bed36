package yamlcatalog

type YAMLCatalog struct {
	Books []YAMLBook `yaml:"books"`
}

type YAMLBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   string `yaml:"year"`
}
