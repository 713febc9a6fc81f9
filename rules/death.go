package rules

import "github.com/battlesnakeio/arcade/board"

// checkForDeath looks at the head after the move has been applied. Possible
// death options are leaving the board, running into the body and running
// into an obstacle.
func checkForDeath(grid Grid, snake *board.Snake, obstacles *board.PointSet, turn int64) *board.Death {
	if len(snake.Body) == 0 {
		return nil
	}
	head := snake.Head()

	cause := ""
	switch {
	case deathByOutOfBounds(head, grid):
		cause = DeathCauseWallCollision
	case deathBySelfCollision(snake):
		cause = DeathCauseSnakeSelfCollision
	case deathByObstacle(head, obstacles):
		cause = DeathCauseObstacleCollision
	default:
		return nil
	}
	return &board.Death{Turn: turn, Cause: cause}
}

func deathByOutOfBounds(head board.Point, grid Grid) bool {
	return !grid.Contains(head)
}

func deathBySelfCollision(snake *board.Snake) bool {
	return snake.NeckContains(snake.Head())
}

func deathByObstacle(head board.Point, obstacles *board.PointSet) bool {
	return obstacles.Contains(head)
}
