package config

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"artra/model"
)

type Config struct {
	Space    SpaceCfg
	Flow     FlowCfg
	Time     model.Time
	Files    FilesCfg
	Monitor  MonitorCfg
	LogLevel string
}

type SpaceCfg struct {
	Nx, Ny, Nz       int
	Ng               int
	XMin, YMin, ZMin float64
	Dx, Dy, Dz       float64
}

type FlowCfg struct {
	Gamma float64
	Cv    float64

	// free stream state used for the initial field
	Rho, U, V, W, P float64
}

type FilesCfg struct {
	Dir      string
	Geometry string
	Restart  string
	Base     string
	Order    string
}

type MonitorCfg struct {
	Addr    string
	History int
}

// Load reads the ini file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return loadCfg(ini.Empty()), nil
	}
	file, err := ini.Load(path)
	if err != nil {
		return nil, model.OpenError("load config", path, err)
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) *Config {
	space := file.Section("space")
	flow := file.Section("flow")
	tm := file.Section("time")
	files := file.Section("files")
	monitor := file.Section("monitor")

	return &Config{
		Space: SpaceCfg{
			Nx:   space.Key("nx").MustInt(10),
			Ny:   space.Key("ny").MustInt(10),
			Nz:   space.Key("nz").MustInt(10),
			Ng:   space.Key("ng").MustInt(2),
			XMin: space.Key("xmin").MustFloat64(0),
			YMin: space.Key("ymin").MustFloat64(0),
			ZMin: space.Key("zmin").MustFloat64(0),
			Dx:   space.Key("dx").MustFloat64(0.1),
			Dy:   space.Key("dy").MustFloat64(0.1),
			Dz:   space.Key("dz").MustFloat64(0.1),
		},
		Flow: FlowCfg{
			Gamma: flow.Key("gamma").MustFloat64(1.4),
			Cv:    flow.Key("cv").MustFloat64(717.5),
			Rho:   flow.Key("rho").MustFloat64(1.0),
			U:     flow.Key("u").MustFloat64(0),
			V:     flow.Key("v").MustFloat64(0),
			W:     flow.Key("w").MustFloat64(0),
			P:     flow.Key("p").MustFloat64(1.0),
		},
		Time: model.Time{
			Restart:     tm.Key("restart").MustBool(false),
			StepCount:   tm.Key("step").MustInt(0),
			OutputCount: tm.Key("output").MustInt(0),
			CurrentTime: tm.Key("current").MustFloat64(0),
		},
		Files: FilesCfg{
			Dir:      files.Key("dir").MustString("."),
			Geometry: files.Key("geometry").MustString(model.DefaultGeometryFile),
			Restart:  files.Key("restart").MustString(model.DefaultRestartFile),
			Base:     files.Key("base").MustString(model.DefaultBaseName),
			Order:    files.Key("order").MustString("native"),
		},
		Monitor: MonitorCfg{
			Addr:    monitor.Key("addr").MustString(""),
			History: monitor.Key("history").MustInt(32),
		},
		LogLevel: file.Section("log").Key("level").MustString("info"),
	}
}

// ByteOrder resolves the configured byte order of the binary files.
func (c *Config) ByteOrder() (binary.ByteOrder, error) {
	switch strings.ToLower(c.Files.Order) {
	case "", "native":
		return binary.NativeEndian, nil
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("unknown byte order %q", c.Files.Order)
}

// GeometryPath and RestartPath resolve the input files against Files.Dir
// unless they are absolute.
func (c *Config) GeometryPath() string {
	return c.resolve(c.Files.Geometry)
}

func (c *Config) RestartPath() string {
	return c.resolve(c.Files.Restart)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Files.Dir, name)
}

// BuildSpace builds the grid metadata described by the [space] section.
func (c *Config) BuildSpace() *model.Space {
	s := model.NewSpace(c.Space.Nx, c.Space.Ny, c.Space.Nz, c.Space.Ng)
	s.XMin, s.YMin, s.ZMin = c.Space.XMin, c.Space.YMin, c.Space.ZMin
	s.Dx, s.Dy, s.Dz = c.Space.Dx, c.Space.Dy, c.Space.Dz
	return s
}

func (c *Config) BuildFlow() *model.Flow {
	return &model.Flow{Gamma: c.Flow.Gamma, Cv: c.Flow.Cv}
}

// Log prints the effective configuration.
func (c *Config) Log() {
	log.WithFields(log.Fields{
		"nodes":   fmt.Sprintf("%dx%dx%d", c.Space.Nx, c.Space.Ny, c.Space.Nz),
		"ghost":   c.Space.Ng,
		"gamma":   c.Flow.Gamma,
		"cv":      c.Flow.Cv,
		"restart": c.Time.Restart,
		"dir":     c.Files.Dir,
	}).Info("configuration loaded")
}
