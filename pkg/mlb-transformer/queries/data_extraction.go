package queries

func ExtractionQuery() string {
	return `SELECT DISTINCT
                g.game_pk as game_pk,
                g.game_type as game_type,
                g.season as season,
                g.game_date as game_date,
                g.official_date as official_date,
                g.state as state,
                g.detailed_state as detailed_state,
                g.away_team_name as away_team_name,
                g.away_team_score as away_team_score,
                g.away_record_wins as away_record_wins,
                g.away_record_losses as away_record_losses,
                g.home_team_name as home_team_name,
                g.home_team_score as home_team_score,
                g.home_record_wins as home_record_wins,
                g.home_record_losses as home_record_losses,
                g.venue_name as venue_name,
                ls.scheduled_innings as scheduled_innings,
                ls.away_runs as away_runs,
                ls.away_hits as away_hits,
                ls.away_errors as away_errors,
                ls.home_runs as home_runs,
                ls.home_hits as home_hits,
                ls.home_errors as home_errors,
                i.num as inning_num,
                i.away_runs as inning_away_runs,
                i.home_runs as inning_home_runs,
                p.at_bat_index as at_bat_index,
                p.inning as play_inning,
                p.half_inning as half_inning,
                p.play_type as play_type,
                p.event as event,
                p.rbi as rbi,
                p.away_score as play_away_score,
                p.home_score as play_home_score,
                p.is_scoring_play as is_scoring_play,
                p.batter_name as batter_name,
                p.pitcher_name as pitcher_name
FROM schedule.games g
    LEFT JOIN game.linescores ls
        ON ls.game_pk = g.game_pk
    LEFT JOIN game.innings i
        ON i.linescore_ref = ls.id
    LEFT JOIN game.plays p
        ON p.game_pk = g.game_pk
    WHERE g.state = 'Final'
ORDER BY g.game_date, p.at_bat_index ASC;
`
}
