package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwk/arfcn-calculator/internal/config"
	"github.com/mwk/arfcn-calculator/internal/display"
)

var (
	cfgFile string
	version string
)

var rootCmd = &cobra.Command{
	Use:   "arfcn-calculator",
	Short: "Cellular ARFCN Calculator",
	Long: `ARFCN Calculator converts a cellular ARFCN into its uplink, downlink and center frequency
	> supported bands: GSM900, GSM1800, UMTS2100, LTE1800`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setLogLevel()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().Int("log-level", 4, "debug=5, info=4, error=2, fatal=1, panic=0")
	rootCmd.PersistentFlags().String("format", string(display.FormatText), "output format (text or json)")
	rootCmd.PersistentFlags().Int("precision", display.DefaultPrecision, "number of decimals of the frequencies")

	viper.BindPFlag("general.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("display.format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("display.precision", rootCmd.PersistentFlags().Lookup("precision"))

	// default values
	viper.SetDefault("general.log_level", 4)
	viper.SetDefault("display.format", string(display.FormatText))
	viper.SetDefault("display.precision", display.DefaultPrecision)
	viper.SetDefault("api.read_timeout", 5*time.Second)

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(bandsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	config.Version = version

	if cfgFile != "" {
		b, err := ioutil.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("arfcn-calculator")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/arfcn-calculator")
		viper.AddConfigPath("/etc/arfcn-calculator")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				log.Debug("no configuration file found, using defaults")
			default:
				log.WithError(err).Fatal("read configuration file error")
			}
		}
	}

	viperBindEnvs(config.C)

	viperHooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)

	if err := viper.Unmarshal(&config.C, viper.DecodeHook(viperHooks)); err != nil {
		log.WithError(err).Fatal("unmarshal config error")
	}
}

func viperBindEnvs(iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			tv = strings.ToLower(t.Name)
		}
		if tv == "-" {
			continue
		}

		switch v.Kind() {
		case reflect.Struct:
			viperBindEnvs(v.Interface(), append(parts, tv)...)
		default:
			// Bash doesn't allow env variable names with a dot so
			// bind the double underscore version.
			keyDot := strings.Join(append(parts, tv), ".")
			keyUnderscore := strings.Join(append(parts, tv), "__")
			viper.BindEnv(keyDot, strings.ToUpper(keyUnderscore))
		}
	}
}

func displayOptions() display.Options {
	return display.Options{
		Format:    display.Format(config.C.Display.Format),
		Precision: config.C.Display.Precision,
	}
}

func setLogLevel() error {
	log.SetLevel(log.Level(uint8(config.C.General.LogLevel)))

	if config.C.General.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.SetOutput(os.Stderr)
	return nil
}
