package app

import (
	"log"
)

// maxRemotePerFrame limita quantos comandos remotos são aplicados por frame.
const maxRemotePerFrame = 8

// processRemoteCommands consome a fila da ponte remota no loop principal.
func (a *App) processRemoteCommands() {
	if a.remote == nil {
		return
	}

	for i := 0; i < maxRemotePerFrame; i++ {
		select {
		case cmd := <-a.remote.Commands():
			log.Printf("[Remote] Aplicando comando: %s", cmd)
			a.runCommand(cmd)
		default:
			return
		}
	}
}
