package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// closingScene 记录 Close 调用次数
type closingScene struct {
	MockScene
	closed int
}

func (c *closingScene) Close() {
	c.closed++
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Draw(nil)     // Should not panic
	sm.Close()
}

// TestSceneManagerSwitchBetweenScenes verifies switching between multiple scenes.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)

	if !scene1.updateCalled {
		t.Error("Scene1's Update was not called")
	}
	if scene2.updateCalled {
		t.Error("Scene2's Update should not have been called yet")
	}

	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if !scene2.updateCalled {
		t.Error("Scene2's Update was not called after switching")
	}
}

// TestSceneManagerClosesScenes 切换场景和退出时关闭实现了 Closer 的场景
func TestSceneManagerClosesScenes(t *testing.T) {
	sm := NewSceneManager()
	first := &closingScene{}
	second := &closingScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first) // 相同场景不触发关闭
	if first.closed != 0 {
		t.Errorf("重复切换到同一场景不应关闭, closed=%d", first.closed)
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("切换后旧场景 closed=%d, 期望 1", first.closed)
	}

	sm.Close()
	if second.closed != 1 {
		t.Errorf("退出时当前场景 closed=%d, 期望 1", second.closed)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Close 后不应有活动场景")
	}
}
