package systems

import "github.com/gonewx/keepmoving/pkg/components"

// ApplyDamage 饱和扣血，返回实际扣除的值
// 负伤害按 0 处理，生命值不会低于 0，也不会超过上限
func ApplyDamage(h *components.HealthComponent, damage int) int {
	if damage <= 0 {
		return 0
	}
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	applied := min(damage, h.CurrentHealth)
	h.CurrentHealth -= applied
	return applied
}

// IsDepleted 生命值是否归零
func IsDepleted(h *components.HealthComponent) bool {
	return h.CurrentHealth <= 0
}
