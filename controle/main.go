package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"PolyDraw/shared/config"
	"PolyDraw/shared/remote"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Uso: controle [-addr host:porta] <complete|copy|reset> [...]")
	flag.PrintDefaults()
}

func main() {
	addr := flag.String("addr", "", "Endereço da ponte de comandos (padrão: RemoteAddr do config)")
	retries := flag.Int("retries", 5, "Tentativas de conexão")
	flag.Usage = usage
	flag.Parse()

	log.SetFlags(log.Ltime)

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	// Valida tudo antes de conectar
	cmds := make([]remote.Command, 0, flag.NArg())
	for _, arg := range flag.Args() {
		cmd, err := remote.ParseCommand(arg)
		if err != nil {
			log.Fatalf("Erro: %v", err)
		}
		cmds = append(cmds, cmd)
	}

	target := *addr
	if target == "" {
		target = config.Load().RemoteAddr
	}
	if target == "" {
		log.Fatal("Erro: ponte desligada no config; use -addr ou inicie o cliente com -remote")
	}

	client := remote.NewClient(remote.URLFor(target))
	client.MaxRetries = *retries
	client.RetryDelay = 500 * time.Millisecond
	if err := client.Connect(); err != nil {
		log.Fatalf("Erro: %v", err)
	}
	defer client.Close()

	for _, cmd := range cmds {
		if _, err := client.Send(cmd); err != nil {
			log.Printf("ERRO: %v", err)
			client.Close()
			os.Exit(1)
		}
		fmt.Printf("[OK] %s\n", cmd)
	}
}
