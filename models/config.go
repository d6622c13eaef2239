package models

type Config struct {
	Debug bool `yaml:"debug" envconfig:"SVID_DEBUG"`

	Api struct {
		Url  string `yaml:"url" envconfig:"SVID_API_URL"`
		Port string `yaml:"port" envconfig:"SVID_API_INTERNAL_PORT" default:"5000"`
	} `yaml:"api"`

	SpliceAi struct {
		Url             string `yaml:"url" envconfig:"SVID_SPLICEAI_URL" default:"https://spliceailookup-api.broadinstitute.org/spliceai/"`
		DefaultDistance int    `yaml:"defaultdistance" envconfig:"SVID_SPLICEAI_DEFAULT_DISTANCE" default:"500"`
		DefaultMask     bool   `yaml:"defaultmask" envconfig:"SVID_SPLICEAI_DEFAULT_MASK" default:"true"`
	} `yaml:"spliceai"`

	ClinVar struct {
		EutilsUrl     string `yaml:"eutilsurl" envconfig:"SVID_CLINVAR_EUTILS_URL" default:"https://eutils.ncbi.nlm.nih.gov/entrez/eutils"`
		RecordLinkUrl string `yaml:"recordlinkurl" envconfig:"SVID_CLINVAR_RECORD_LINK_URL" default:"https://www.ncbi.nlm.nih.gov/clinvar"`
	} `yaml:"clinvar"`

	PubMed struct {
		Url string `yaml:"url" envconfig:"SVID_PUBMED_URL" default:"https://pubmed.ncbi.nlm.nih.gov"`
	} `yaml:"pubmed"`

	VarSome struct {
		Url string `yaml:"url" envconfig:"SVID_VARSOME_URL" default:"https://varsome.com"`
	} `yaml:"varsome"`

	DbNsfp struct {
		Url string `yaml:"url" envconfig:"SVID_DBNSFP_URL" default:"http://database.liulab.science"`
	} `yaml:"dbnsfp"`

	Ensembl struct {
		Url string `yaml:"url" envconfig:"SVID_ENSEMBL_URL" default:"https://rest.ensembl.org"`
	} `yaml:"ensembl"`

	GnomAd struct {
		ApiUrl  string `yaml:"apiurl" envconfig:"SVID_GNOMAD_API_URL" default:"https://gnomad.broadinstitute.org/api/"`
		LinkUrl string `yaml:"linkurl" envconfig:"SVID_GNOMAD_LINK_URL" default:"https://gnomad.broadinstitute.org"`
		Dataset string `yaml:"dataset" envconfig:"SVID_GNOMAD_DATASET" default:"gnomad_r4"`
	} `yaml:"gnomad"`

	Monitoring struct {
		Enabled         bool `yaml:"enabled" envconfig:"SVID_MONITORING_ENABLED"`
		IntervalMinutes int  `yaml:"intervalminutes" envconfig:"SVID_MONITORING_INTERVAL_MINUTES" default:"5"`
	} `yaml:"monitoring"`
}
