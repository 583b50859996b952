package schedule

import (
	"fmt"
	"strings"

	"github.com/hiono/taskmaster-gitlab-gantt/internal/taskmaster"
)

// topoOrder returns the task ids in dependency order using Kahn's
// algorithm, ties broken by id order for determinism. Only dependency
// references present in the set form edges; unresolved references are
// skipped. A cycle is an explicit error, not a silently-wrong fixpoint.
func topoOrder(set *taskmaster.Set) ([]taskmaster.ID, error) {
	adj := make(map[taskmaster.ID][]taskmaster.ID)     // dep -> dependents
	inDegree := make(map[taskmaster.ID]int, set.Len()) // count of in-set deps

	for _, id := range set.IDs() {
		deps := set.Deps(id)
		inDegree[id] = len(deps)
		for _, dep := range deps {
			adj[dep] = append(adj[dep], id)
		}
	}

	var queue []taskmaster.ID
	for _, id := range set.IDs() {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	var order []taskmaster.ID
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var newReady []taskmaster.ID
		for _, succ := range adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				newReady = append(newReady, succ)
			}
		}
		taskmaster.SortIDs(newReady)
		queue = append(queue, newReady...)
	}

	if len(order) != set.Len() {
		cycle := findCycle(set, adj)
		return nil, fmt.Errorf("dependency cycle detected: %s", joinIDs(cycle))
	}
	return order, nil
}

// findCycle reconstructs one cycle path using DFS coloring.
func findCycle(set *taskmaster.Set, adj map[taskmaster.ID][]taskmaster.ID) []taskmaster.ID {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[taskmaster.ID]int)
	parent := make(map[taskmaster.ID]taskmaster.ID)

	var dfs func(node taskmaster.ID) []taskmaster.ID
	dfs = func(node taskmaster.ID) []taskmaster.ID {
		color[node] = gray
		for _, next := range adj[node] {
			if color[next] == gray {
				cycle := []taskmaster.ID{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	for _, id := range set.IDs() {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

func joinIDs(ids []taskmaster.ID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " -> ")
}
