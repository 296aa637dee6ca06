package component

// Phase — фаза забега
type Phase int

const (
	NotStarted Phase = iota
	Running
	LevelingUp // пауза на выбор улучшения
	GameOver   // терминальная фаза
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case LevelingUp:
		return "leveling-up"
	case GameOver:
		return "game-over"
	}
	return "unknown"
}
