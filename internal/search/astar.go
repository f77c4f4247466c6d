// Package search implements pathfinding over snake poses: an A* search for
// point-to-point routing and a breadth-first search for "nearest cell of a
// given color". Both close on the full pose key (snake.Key()), never on
// head position alone, so that two poses sharing a head but differing in
// body are treated as distinct nodes — closing on head position alone can
// make the search miss the only pose from which the goal is actually
// reachable.
package search

import (
	"container/heap"
	"context"

	"github.com/ghsnake/routesolver/internal/errs"
	"github.com/ghsnake/routesolver/internal/geom"
	"github.com/ghsnake/routesolver/internal/grid"
	"github.com/ghsnake/routesolver/internal/outside"
	"github.com/ghsnake/routesolver/internal/snake"
)

// passable reports whether a successor head position is enterable while
// maxColor is in effect: either its color doesn't exceed maxColor, or it's
// in the outside region (which carries no color restriction), or it is the
// literal target — reaching the goal is always allowed even if the goal
// cell itself is colored above maxColor.
func passable(g *grid.Grid, region *outside.Region, p geom.Point, maxColor int, target geom.Point) bool {
	if p == target {
		return true
	}
	c, err := g.AtOrEmpty(p)
	if err != nil {
		return false
	}
	if c <= maxColor {
		return true
	}
	return region.Contains(p)
}

func heuristic(a, b geom.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

type node struct {
	pose     snake.Snake
	g, f     int
	index    int // heap index, maintained by heap.Interface
	sequence int // insertion order, for deterministic tie-breaking
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].sequence < h[j].sequence
}
func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *nodeHeap) Push(x any) {
	n := x.(*node)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// AStar finds the shortest pose-to-pose route from start until the head
// reaches target, where a successor pose is valid per passable. It returns
// the sequence of poses from start to the goal pose, inclusive.
func AStar(ctx context.Context, g *grid.Grid, region *outside.Region, start snake.Snake, target geom.Point, maxColor int) ([]snake.Snake, error) {
	if start.Head() == target {
		return []snake.Snake{start}, nil
	}

	open := &nodeHeap{}
	heap.Init(open)

	startNode := &node{pose: start, g: 0, f: heuristic(start.Head(), target)}
	heap.Push(open, startNode)

	gScore := map[string]int{start.Key(): 0}
	cameFrom := map[string]snake.Snake{}
	closed := map[string]bool{}
	seq := 1

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, errs.Wrap("search.AStar", errs.KindCancelled, ctx.Err(), nil)
		default:
		}

		cur := heap.Pop(open).(*node)
		curKey := cur.pose.Key()
		if closed[curKey] {
			continue
		}
		closed[curKey] = true

		if cur.pose.Head() == target {
			return reconstruct(cameFrom, cur.pose), nil
		}

		for _, d := range geom.Directions {
			next, err := cur.pose.Advance(d)
			if err != nil {
				continue
			}
			if !passable(g, region, next.Head(), maxColor, target) {
				continue
			}
			nextKey := next.Key()
			if closed[nextKey] {
				continue
			}
			tentativeG := cur.g + 1
			if best, ok := gScore[nextKey]; ok && tentativeG >= best {
				continue
			}
			gScore[nextKey] = tentativeG
			cameFrom[nextKey] = cur.pose
			heap.Push(open, &node{
				pose:     next,
				g:        tentativeG,
				f:        tentativeG + heuristic(next.Head(), target),
				sequence: seq,
			})
			seq++
		}
	}

	return nil, errs.New("search.AStar", errs.KindUnreachable, map[string]any{
		"from": start.Head(), "to": target,
	})
}

// AStarToPose finds the shortest route from start to a pose that equals
// target exactly, segment for segment, not merely a matching head. Route
// closure (§3, §8 item 5) requires the whole starting Snake to reappear at
// the end, and two poses can share a head while differing in body — so the
// loop-closing return path needs this full-pose goal, not AStar's
// point goal. Heuristic and obstacle rules are otherwise identical; the
// Manhattan distance between heads remains admissible since reaching
// target's exact pose always costs at least as many head moves as closing
// that distance.
func AStarToPose(ctx context.Context, g *grid.Grid, region *outside.Region, start, target snake.Snake, maxColor int) ([]snake.Snake, error) {
	if start.Key() == target.Key() {
		return []snake.Snake{start}, nil
	}

	open := &nodeHeap{}
	heap.Init(open)

	startNode := &node{pose: start, g: 0, f: heuristic(start.Head(), target.Head())}
	heap.Push(open, startNode)

	gScore := map[string]int{start.Key(): 0}
	cameFrom := map[string]snake.Snake{}
	closed := map[string]bool{}
	seq := 1

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, errs.Wrap("search.AStarToPose", errs.KindCancelled, ctx.Err(), nil)
		default:
		}

		cur := heap.Pop(open).(*node)
		curKey := cur.pose.Key()
		if closed[curKey] {
			continue
		}
		closed[curKey] = true

		if curKey == target.Key() {
			return reconstruct(cameFrom, cur.pose), nil
		}

		for _, d := range geom.Directions {
			next, err := cur.pose.Advance(d)
			if err != nil {
				continue
			}
			if !passable(g, region, next.Head(), maxColor, target.Head()) {
				continue
			}
			nextKey := next.Key()
			if closed[nextKey] {
				continue
			}
			tentativeG := cur.g + 1
			if best, ok := gScore[nextKey]; ok && tentativeG >= best {
				continue
			}
			gScore[nextKey] = tentativeG
			cameFrom[nextKey] = cur.pose
			heap.Push(open, &node{
				pose:     next,
				g:        tentativeG,
				f:        tentativeG + heuristic(next.Head(), target.Head()),
				sequence: seq,
			})
			seq++
		}
	}

	return nil, errs.New("search.AStarToPose", errs.KindUnreachable, map[string]any{
		"from": start.Head(), "to": target.Head(),
	})
}

func reconstruct(cameFrom map[string]snake.Snake, goal snake.Snake) []snake.Snake {
	path := []snake.Snake{goal}
	cur := goal
	for {
		prev, ok := cameFrom[cur.Key()]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// path is goal-to-start; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
