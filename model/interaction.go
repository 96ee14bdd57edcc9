package model

type Action string

const (
	ActionWatchlist Action = "watchlist"
	ActionLike      Action = "like"
	ActionDislike   Action = "dislike"
	ActionWatched   Action = "watched"
)

func ParseAction(value string) (Action, bool) {
	switch a := Action(value); a {
	case ActionWatchlist, ActionLike, ActionDislike, ActionWatched:
		return a, true
	default:
		return "", false
	}
}

// FlagName is the json key the mobile client reads back for the action.
func (a Action) FlagName() string {
	switch a {
	case ActionWatchlist:
		return "inWatchlist"
	case ActionLike:
		return "isLiked"
	case ActionDislike:
		return "isDisliked"
	case ActionWatched:
		return "isWatched"
	default:
		return ""
	}
}

//---------------------------------------
//---------------------------------------

type Opinion int

const (
	OpinionNeutral Opinion = iota
	OpinionLiked
	OpinionDisliked
)

func (o Opinion) String() string {
	switch o {
	case OpinionLiked:
		return "liked"
	case OpinionDisliked:
		return "disliked"
	default:
		return "neutral"
	}
}

// Interaction is the per-user state of a movie. Liked and disliked share one
// field so both can never be set.
type Interaction struct {
	Opinion     Opinion
	Watched     bool
	InWatchlist bool
}

func (i Interaction) Liked() bool    { return i.Opinion == OpinionLiked }
func (i Interaction) Disliked() bool { return i.Opinion == OpinionDisliked }

// Toggle applies the action and returns the new state and the new value of
// the flag named by the action.
func (i Interaction) Toggle(action Action) (Interaction, bool) {
	switch action {
	case ActionLike:
		if i.Opinion == OpinionLiked {
			i.Opinion = OpinionNeutral
		} else {
			i.Opinion = OpinionLiked
		}
		return i, i.Liked()
	case ActionDislike:
		if i.Opinion == OpinionDisliked {
			i.Opinion = OpinionNeutral
		} else {
			i.Opinion = OpinionDisliked
		}
		return i, i.Disliked()
	case ActionWatched:
		i.Watched = !i.Watched
		return i, i.Watched
	case ActionWatchlist:
		i.InWatchlist = !i.InWatchlist
		return i, i.InWatchlist
	}
	return i, false
}

// Flag reports the current value of the flag named by the action.
func (i Interaction) Flag(action Action) bool {
	switch action {
	case ActionLike:
		return i.Liked()
	case ActionDislike:
		return i.Disliked()
	case ActionWatched:
		return i.Watched
	case ActionWatchlist:
		return i.InWatchlist
	}
	return false
}

//---------------------------------------
//---------------------------------------

type ListKind string

const (
	ListWatchlist ListKind = "watchlist"
	ListLiked     ListKind = "liked"
	ListDisliked  ListKind = "disliked"
	ListWatched   ListKind = "watched"
)

func ParseListKind(value string) (ListKind, bool) {
	switch l := ListKind(value); l {
	case ListWatchlist, ListLiked, ListDisliked, ListWatched:
		return l, true
	default:
		return "", false
	}
}

// Column is the UserMovie column that selects the list.
func (l ListKind) Column() string {
	switch l {
	case ListWatchlist:
		return "inWatchlist"
	case ListLiked:
		return "isLiked"
	case ListDisliked:
		return "isDisliked"
	case ListWatched:
		return "isWatched"
	default:
		return ""
	}
}
