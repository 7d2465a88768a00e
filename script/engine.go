// Package script embeds a Lua interpreter for data-driven levels: scripts
// spawn templated entities through the Spawner. The VM is confined to the
// frame-loop goroutine.
package script

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/data"
)

// Engine wraps a single gopher-lua VM with the framework's spawn bindings
// installed.
type Engine struct {
	vm      *lua.LState
	spawner *data.Spawner
	log     *zap.Logger
}

// NewEngine creates a Lua engine bound to a spawner. A nil logger disables
// diagnostics.
func NewEngine(spawner *data.Spawner, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})

	e := &Engine{vm: vm, spawner: spawner, log: log}
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("spawn", vm.NewFunction(e.luaSpawn))
	vm.SetGlobal("spawn_row", vm.NewFunction(e.luaSpawnRow))
	vm.SetGlobal("log_info", vm.NewFunction(e.luaLogInfo))
	return e
}

// LoadDir runs every .lua file in a directory, in name order. A missing
// directory is not an error: levels are optional content.
func (e *Engine) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read script directory %s", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return errors.Wrapf(err, "run script %s", path)
		}
		e.log.Debug("script executed", zap.String("file", path))
	}
	return nil
}

// Run executes a script source string, mainly for tests and consoles.
func (e *Engine) Run(source string) error {
	if err := e.vm.DoString(source); err != nil {
		return errors.Wrap(err, "run script")
	}
	return nil
}

// Close shuts the VM down.
func (e *Engine) Close() {
	e.vm.Close()
}

// luaSpawn is spawn(template, x, y) -> entity id (0 on failure).
func (e *Engine) luaSpawn(L *lua.LState) int {
	name := L.CheckString(1)
	x := float32(L.CheckNumber(2))
	y := float32(L.CheckNumber(3))

	id, err := e.spawner.Spawn(name, x, y)
	if err != nil {
		e.log.Warn("lua spawn failed", zap.String("template", name), zap.Error(err))
	}
	L.Push(lua.LNumber(id))
	return 1
}

// luaSpawnRow is spawn_row(template, count, x, y, spacing): count entities
// in a horizontal line. Returns the number actually spawned.
func (e *Engine) luaSpawnRow(L *lua.LState) int {
	name := L.CheckString(1)
	count := L.CheckInt(2)
	x := float32(L.CheckNumber(3))
	y := float32(L.CheckNumber(4))
	spacing := float32(L.CheckNumber(5))

	spawned := 0
	for i := 0; i < count; i++ {
		if _, err := e.spawner.Spawn(name, x+float32(i)*spacing, y); err != nil {
			e.log.Warn("lua spawn_row failed", zap.String("template", name), zap.Error(err))
			break
		}
		spawned++
	}
	L.Push(lua.LNumber(spawned))
	return 1
}

// luaLogInfo is log_info(message), routing script output through the
// engine's logger instead of stdout.
func (e *Engine) luaLogInfo(L *lua.LState) int {
	e.log.Info("script: " + L.CheckString(1))
	return 0
}
