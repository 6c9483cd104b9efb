package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"duostats/internal/stats"
)

// Text writes the three rankings preceded by the number of processed records.
func Text(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "전체 게임 수: %d\n", r.Total)

	fmt.Fprint(bw, "\n개인 승률:\n")
	for _, p := range r.PlayersByRate {
		fmt.Fprintf(bw, "%d위 %s: %.2f%% (승리: %d, 경기 수: %d)\n", p.Rank, p.Name, p.WinRate, p.Wins, p.Games)
	}

	fmt.Fprint(bw, "\n팀 승률:\n")
	for _, t := range r.TeamsByRate {
		fmt.Fprintf(bw, "%d위 팀 %s: %.2f%% (승리: %d, 경기 수: %d)\n", t.Rank, t.Team.Name(), t.WinRate, t.Wins, t.Games)
	}

	fmt.Fprint(bw, "\n개인 승리 횟수 순위:\n")
	for _, p := range r.PlayersByWins {
		fmt.Fprintf(bw, "%d위 %s: 승리 %d회\n", p.Rank, p.Name, p.Wins)
	}

	return bw.Flush()
}

// StreakText appends the longest win and loss runs per player, then per team.
func StreakText(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "\n최대 연승/연패:\n")
	for _, s := range r.Streaks {
		fmt.Fprintf(bw, "%s: 최대 연승 %d, 최대 연패 %d\n", s.Player, s.MaxWin, s.MaxLose)
	}

	if len(r.TeamStreaks) > 0 {
		fmt.Fprint(bw, "\n팀 최대 연승/연패:\n")
		for _, s := range r.TeamStreaks {
			fmt.Fprintf(bw, "팀 %s: 최대 연승 %d, 최대 연패 %d\n", s.Team.Name(), s.MaxWin, s.MaxLose)
		}
	}

	return bw.Flush()
}

// RankUpText appends what each player needs to pass the one ranked directly above.
func RankUpText(w io.Writer, r Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "\n순위 상승 조건:\n")
	for _, c := range r.RankUps {
		fmt.Fprintf(bw, "%d위 %s → %d위 %s: %s\n", c.Rank, c.Player, c.TargetRank, c.Target, RankUpDescription(c))
	}

	return bw.Flush()
}

func RankUpDescription(c stats.RankUp) string {
	if !c.Reachable {
		return "순위 상승이 어렵습니다."
	}

	var parts []string
	if c.RequiredWins > 0 {
		parts = append(parts, fmt.Sprintf("%s가 %d번 더 이기고", c.Player, c.RequiredWins))
	}
	if c.RequiredLosses > 0 {
		parts = append(parts, fmt.Sprintf("%s가 %d번 더 지면", c.Target, c.RequiredLosses))
	}
	if len(parts) == 0 {
		return "이미 순위가 더 높습니다."
	}
	return strings.Join(parts, ", ") + " 순위가 올라갑니다."
}

// Write renders the rankings and whichever optional sections are selected.
func Write(w io.Writer, r Result, sec Sections) error {
	if err := Text(w, r); err != nil {
		return err
	}
	if sec.Streaks {
		if err := StreakText(w, r); err != nil {
			return err
		}
	}
	if sec.RankUp {
		if err := RankUpText(w, r); err != nil {
			return err
		}
	}
	return nil
}
