package engine

// DefaultGameFSMConfig is the phase graph driving GameState
// Reset lives on Root so it is honored from every phase, including Idle itself
const DefaultGameFSMConfig = `
initial = "Idle"

[states.Root]
transitions = [
    { trigger = "EventGameReset", target = "Idle" },
]

# --- GRACE PERIOD ---

[states.Idle]
on_enter = [
    { action = "EnterPhase", arg = "Idle" },
]
transitions = [
    { trigger = "Tick", target = "Active", guard = "GraceElapsed" },
]

# --- PLAY ---

[states.Active]
on_enter = [
    { action = "EnterPhase", arg = "Active" },
]
transitions = [
    { trigger = "Tick", target = "GameOver", guard = "LivesDepleted" },
]

[states.GameOver]
on_enter = [
    { action = "EnterPhase", arg = "GameOver" },
    { action = "LogSession" },
]
`
