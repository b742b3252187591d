package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"artra/config"
	"artra/ensight"
	"artra/model"
	"artra/particle"
	"artra/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

var confPath = flag.String("conf", "", "ini configuration file, defaults are used when empty")

func main() {
	flag.Parse()
	cfg, err := config.Load(*confPath)
	if err != nil {
		log.Fatal(err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	cfg.Log()

	order, err := cfg.ByteOrder()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Files.Dir, 0755); err != nil {
		log.Fatal(err)
	}

	spheres := particle.NewStore()
	loader := particle.NewLoader(cfg.GeometryPath(), cfg.RestartPath())
	if err := loader.Load(cfg.Time.Restart, spheres); err != nil {
		log.Fatal(err)
	}

	space := cfg.BuildSpace()
	part := model.InteriorPartition(space)
	flow := cfg.BuildFlow()
	U := initialField(space, cfg.Flow)

	exporter := ensight.NewExporter(cfg.Files.Dir, cfg.Files.Base, order)
	var hub *server.Hub
	if cfg.Monitor.Addr != "" {
		hub = server.NewHub(cfg.Monitor.History)
		go hub.Run()
		exporter.Notifier = hub
		upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
		s := server.NewServer(cfg.Monitor.Addr, upgrader, hub)
		go func() {
			if err := s.Serve(); err != nil {
				log.Fatal("ListenAndServe: ", err)
			}
		}()
	}

	t := cfg.Time
	ev, err := exporter.Export(U, space, spheres, &t, part, flow)
	if err != nil {
		log.Fatal(err)
	}
	log.WithField("case", ev.CaseFile).Info("Session End")

	if hub != nil {
		select {}
	}
}

// initialField fills every node with the configured free stream state in
// conserved form.
func initialField(space *model.Space, fs config.FlowCfg) []float64 {
	U := make([]float64, space.NodeCount()*space.DimU)
	energy := fs.P/(fs.Gamma-1) + 0.5*fs.Rho*(fs.U*fs.U+fs.V*fs.V+fs.W*fs.W)
	for n := 0; n < space.NodeCount(); n++ {
		idx := n * space.DimU
		U[idx] = fs.Rho
		U[idx+1] = fs.Rho * fs.U
		U[idx+2] = fs.Rho * fs.V
		U[idx+3] = fs.Rho * fs.W
		U[idx+4] = energy
	}
	return U
}
