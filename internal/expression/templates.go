package expression

// digitTemplates holds the expression templates for each digit. Every
// expression in a digit's list evaluates to that digit for any value of its
// parameter within range.
var digitTemplates = map[rune][]Template{
	'0': {
		{Text: `\left( d^2\omega \right)`},
		{Text: `\left( H^1(\mathbb{P}^2, \mathcal{O}(-$n)) \right)`, Min: 1, Max: 3},
		{Text: `\left( \text{ch}_0(\mathcal{E} \otimes \mathcal{F}) - \text{ch}_0(\mathcal{E}) \cdot \text{ch}_0(\mathcal{F}) \right)`},
		{Text: `\left( c_1(SU(n)) \right)`},
		{Text: `\left( p_1(M^3) \right)`},
		{Text: `\left( \partial_n \circ \partial_{n+1} \right)`},
		{Text: `\left( H_n(\text{pt}), n>0 \right)`},
		{Text: `\left( \operatorname{Ext}^1_{\mathbb{Z}}(\mathbb{Z}/n\mathbb{Z}, \mathbb{Q}) \right)`},
		{Text: `\left( \chi(SU(n)) \right)`},
		{Text: `\left( \operatorname{Tor}_1^{\mathbb{Z}}(\mathbb{Z}/n\mathbb{Z}, \mathbb{Q}) \right)`},
		{Text: `\left( \sigma(\partial W) \right)`},
		{Text: `\left( \hat{A}(\partial W) \right)`},
		{Text: `\left( [\mathbf{X}, \mathbf{X}] \right)`},
		{Text: `\left( [X, [Y, Z]] + [Y, [Z, X]] + [Z, [X, Y]] \right)`},
		{Text: `\left( \operatorname{Tr}(T^a), T^a \in \mathfrak{su}(n) \right)`},
		{Text: `\left( \langle \chi_i, \chi_j \rangle_{i \neq j} \right)`},
		{Text: `\left( \text{index}(D_{\text{odd dim}}) \right)`},
		{Text: `\left( \sum_{N=1}^{\infty} \frac{\mu(N)}{N} \right)`},
		{Text: `\left( \Gamma(z)\Gamma(1-z)\sin(\pi z) - \pi \right)`},
		{Text: `\left( \lim_{\tau \to i\infty} f(\tau) \text{ for } f \in S_k(\Gamma_0(N)) \right)`},
		{Text: `\left( \operatorname{rank}_{an}(E) - \operatorname{rank}_{alg}(E) \right)`},
		{Text: `\left( J_{$n}(z) Y_{$n-1}(z) - J_{$n-1}(z) Y_{$n}(z) + \frac{2}{\pi z} \right)`, Min: 1, Max: 3},
		{Text: `\left( \langle[\hat{x}, \hat{p}_x]\rangle - i\hbar \right)`},
		{Text: `\left( \nabla_\mu g^{\alpha \beta} \right)`},
	},
	'1': {
		{Text: `\left( \text{rk}(\text{Pic}(\mathbb{P}^1)) \right)`},
		{Text: `\left( \text{dim}(\mathfrak{so}(2)) \right)`},
		{Text: `\left( \text{rank}(\text{K}_0(\text{Spec}(\mathbb{Z}))) \right)`},
		{Text: `\left( \frac{\det(e^{A})}{e^{\operatorname{Tr}(A)}} \right)`},
		{Text: `\left( \text{rank}(\mathfrak{su}(2)) \right)`},
		{Text: `\left( \chi_V(e) / \dim(V) \right)`},
		{Text: `\left( |Z(S_3)| \right)`},
		{Text: `\left( \text{dim}_{\mathbb{C}} H^{0,0}(X) \right)`},
		{Text: `\left( h^{1,1}(\mathbb{P}^1) \right)`},
		{Text: `\left( \chi(\text{Spec}(\mathbb{C})) \right)`},
		{Text: `\left( \frac{1}{2}\chi(\mathbb{S}^{0}) \right)`},
		{Text: `\left( \text{dim}(H^0(\mathbb{P}^1, \mathcal{O}(0))) \right)`},
		{Text: `\left( \text{genus}(\mathbb{P}^1) + 1 \right)`},
		{Text: `\left( \deg(\mathbb{P}^0) \right)`},
		{Text: `\left( \frac{(d-1)(d-2)}{2}|_{d=3} \right)`},
		{Text: `\left( \text{lk}(L2a1) \right)`},
		{Text: `\left( b_0(\mathbb{T}^n) \right)`},
		{Text: `\left( \zeta(0) + \frac{3}{2} \right)`},
		{Text: `\left( \lim_{s \to 1} (s-1)\zeta(s) \right)`},
		{Text: `\left( \prod_p \left(1 + \frac{1}{p(p-1)}\right) / \left(\frac{\zeta(2)\zeta(3)}{\zeta(6)}\right) \right)`},
		{Text: `\left( \sum_{idx=1}^{\infty} \frac{\mu(idx)}{idx} + 1 \right)`},
		{Text: `\left( h(-4) \right)`},
		{Text: `\left( \lambda([0,1]) \right)`},
		{Text: `\left( \int_0^{\infty} \frac{x^{$n-1}}{e^x - 1} \,dx \cdot \frac{1}{\Gamma($n)\zeta($n)} \right)`, Min: 2, Max: 4},
	},
	'2': {
		{Text: `\left( \text{rank}(\mathfrak{sl}_3(\mathbb{C})) \right)`},
		{Text: `\left( \dim H^1(S_3, \mathbb{C}^*) \right)`},
		{Text: `\left( \text{dim}(\mathfrak{u}(1)) \cdot 2 \right)`},
		{Text: `\left( \text{dim}(\mathfrak{so}(3)) - 1 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{so}(4)) \right)`},
		{Text: `\left( \dim(\mathfrak{sl}_2(\mathbb{C}))-1 \right)`},
		{Text: `\left( \text{rk}(\text{Pic}(\mathbb{P}^1)) + 1 \right)`},
		{Text: `\left( \text{dim}(H^0(\mathbb{P}^1, \mathcal{O}(1))) \right)`},
		{Text: `\left( b_0(\mathbb{S}^1) + b_1(\mathbb{S}^1) \right)`},
		{Text: `\left( b_1(\mathbb{T}^2) \right)`},
		{Text: `\left( \deg(Q \subset \mathbb{P}^3) \right)`},
		{Text: `\left( \chi(\mathbb{CP}^2) - 1 \right)`},
		{Text: `\left( \sum_i b_{2i}(\mathbb{CP}^1) \right)`},
		{Text: `\left( \deg(\mathbb{V}(x_0x_2 - x_1^2)) \right)`},
		{Text: `\left( \zeta(0) + \frac{5}{2} \right)`},
		{Text: `\left( \lim_{s \to 1} 2(s-1)\zeta(s) \right)`},
		{Text: `\left( h(-15) \right)`},
		{Text: `\left( \phi(\phi(5)) \right)`},
		{Text: `\left( h(-23) - 1 \right)`},
		{Text: `\left( |\{\mathfrak{p} \subset \mathbb{Z}[i] \mid \mathfrak{p} | (5)\}| \right)`},
		{Text: `\left( \phi(4) \right)`},
		{Text: `\left( |\text{Aut}(S_3)| - 4 \right)`},
		{Text: `\left( \text{rank}(\text{K}_0(\mathbb{P}^1)) \right)`},
		{Text: `\left( \text{rank}(\mathbb{Z}/2\mathbb{Z} \times \mathbb{Z}/2\mathbb{Z}) \right)`},
		{Text: `\left( \left(\int_0^{\infty} \frac{x^{$n-1}}{e^x - 1} \,dx \cdot \frac{1}{\Gamma($n)\zeta($n)}\right) \cdot 2 \right)`, Min: 2, Max: 4},
	},
	'3': {
		{Text: `\left( \text{dim}(\mathfrak{sl}_2(\mathbb{C})) \right)`},
		{Text: `\left( \text{dim}(\mathfrak{su}(2)) \right)`},
		{Text: `\left( \text{dim}(\text{SO}(3)) \right)`},
		{Text: `\left( \dim(\text{ad}(\mathfrak{su}(2))) \right)`},
		{Text: `\left( |W(A_2)| - 3 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{so}(7)) \right)`},
		{Text: `\left( |Irr(S_3)| \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 11 \right)`},
		{Text: `\left( \dim(\mathfrak{f}_4) - 49 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_7) - 4 \right)`},
		{Text: `\left( \text{dim}(H^0(\mathbb{P}^2, \mathcal{O}(1))) \right)`},
		{Text: `\left( \chi(\mathbb{CP}^2) \right)`},
		{Text: `\left( [\mathbb{Q}(\sqrt[3]{2}) : \mathbb{Q}] \right)`},
		{Text: `\left( b_1(\mathbb{T}^3) \right)`},
		{Text: `\left( c(3_1) \right)`},
		{Text: `\left( \dim(k[x,y,z]) \right)`},
		{Text: `\left( \deg(\nu_3(\mathbb{P}^1)) \right)`},
		{Text: `\left( c_1(T_{\mathbb{P}^2}) \cdot H \right)`},
		{Text: `\left( \sigma(E_8) - 5 \right)`},
		{Text: `\left( \zeta(-1) + \frac{37}{12} \right)`},
		{Text: `\left( h(-23) \right)`},
		{Text: `\left( \omega(30) \right)`},
		{Text: `\left( |\mathbb{A}_3| \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_8) - 5 \right)`},
		{Text: `\left( \frac{\Gamma(4)\Gamma(2)}{\Gamma(3)} \right)`},
	},
	'4': {
		{Text: `\left( \text{dim}(\mathfrak{so}(5)) - 6 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{so}(8)) \right)`},
		{Text: `\left( \dim(\text{spinor rep of } SO(5)) \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 10 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_7) - 3 \right)`},
		{Text: `\left( |W(A_2)| - 2 \right)`},
		{Text: `\left( \dim(\text{ad}(\mathfrak{sl}_2(\mathbb{C}))) + 1 \right)`},
		{Text: `\left( \dim(\mathfrak{su}(3)) - 4 \right)`},
		{Text: `\left( \text{dim}(H^0(\mathbb{P}^3, \mathcal{O}(1))) \right)`},
		{Text: `\left( \chi(\mathbb{P}^2) + 1 \right)`},
		{Text: `\left( \text{dim}(\text{End}(\mathbb{C}^2)) \right)`},
		{Text: `\left( \deg(\nu_2(\mathbb{P}^2)) \right)`},
		{Text: `\left( \sum_i b_i(\mathbb{T}^2) \right)`},
		{Text: `\left( \text{rank}(\pi_1(\Sigma_2)) \right)`},
		{Text: `\left( c_1(T_{\mathbb{P}^1 \times \mathbb{P}^1})^2 - 4 \right)`},
		{Text: `\left( \deg(K_{\mathbb{P}^2}) + 7 \right)`},
		{Text: `\left( \zeta(-3) + \frac{479}{120} \right)`},
		{Text: `\left( h(-39) \right)`},
		{Text: `\left( h(-51) \right)`},
		{Text: `\left( h(-52) \right)`},
		{Text: `\left( |\{\mathfrak{p} \subset \mathbb{Z}[i] \mid \mathfrak{p} | (13)\}| + 2 \right)`},
		{Text: `\left( \text{depth}(k[[w,x,y,z]]) \right)`},
		{Text: `\left( \text{rank}(K_0(\mathbb{P}^1)) + 2 \right)`},
		{Text: `\left( \operatorname{Res}_{z=0} \frac{4\cos(z)}{z} \right)`},
		{Text: `\left( \sigma(E_8) - 4 \right)`},
	},
	'5': {
		{Text: `\left( \text{dim}(\mathfrak{sp}(4,\mathbb{C})) - 5 \right)`},
		{Text: `\left( \dim(\text{U}(2)) + 1 \right)`},
		{Text: `\left( |Irr(D_4)| \right)`},
		{Text: `\left( \text{rank}(\mathfrak{so}(11)) \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 9 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_8) - 3 \right)`},
		{Text: `\left( \sigma(E_8) - 3 \right)`},
		{Text: `\left( |W(A_2)| - 1 \right)`},
		{Text: `\left( \text{dim}(\text{Symp}^5(\mathbb{C}^2)) - 1 \right)`},
		{Text: `\left( \text{dim}(H^0(\mathbb{P}^4, \mathcal{O}(1))) \right)`},
		{Text: `\left( \chi(\mathbb{P}^2) + 2 \right)`},
		{Text: `\left( \chi(K_5) \right)`},
		{Text: `\left( c_1(T_{\mathbb{P}^2})^2 - 4 \right)`},
		{Text: `\left( b_1(\mathbb{T}^2) \cdot 2 + 1 \right)`},
		{Text: `\left( \deg(\nu_4(\mathbb{P}^1)) + 1 \right)`},
		{Text: `\left( h(-47) \right)`},
		{Text: `\left( v_2(40) \right)`},
		{Text: `\left( h(-23) + 2 \right)`},
		{Text: `\left( \zeta(-3) \cdot 120 + 4 \right)`},
		{Text: `\left( \text{dim}(\mathfrak{sl}_2(\mathbb{C})) + 2 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_6) - 1 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_7) - 2 \right)`},
		{Text: `\left( \dim(\mathfrak{so}(4)) + \zeta(0) + 1/2 \right)`},
		{Text: `\left( \dim(\Lambda^2(\mathbb{C}^4)) - 1 \right)`},
	},
	'6': {
		{Text: `\left( \text{dim}(\mathfrak{so}(4,\mathbb{R})) \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_6) \right)`},
		{Text: `\left( |W(A_2)| \right)`},
		{Text: `\left( \dim(\mathfrak{so}(5)) - \text{rank}(\mathfrak{so}(8)) \right)`},
		{Text: `\left( \dim(\Lambda^2(\mathbb{C}^4)) \right)`},
		{Text: `\left( \dim(\mathfrak{su}(3)) - 2 \right)`},
		{Text: `\left( \dim(\mathfrak{sp}(4,\mathbb{C})) - 4 \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 8 \right)`},
		{Text: `\left( \text{dim}(\text{Symp}^6(\mathbb{C}^2)) - 1 \right)`},
		{Text: `\left( e_0(Q, R)|_{R=k[x], Q=(x^6)} \right)`},
		{Text: `\left( -2 \deg(K_{\mathbb{P}^2}) \right)`},
		{Text: `\left( b_1(\mathbb{T}^2) \cdot 3 \right)`},
		{Text: `\left( h^{2,0}(\text{K3 surface}) + 5 \right)`},
		{Text: `\left( \chi(\mathbb{CP}^2) \cdot 2 \right)`},
		{Text: `\left( c_1^2(\mathbb{P}^2) - 3 \right)`},
		{Text: `\left( \zeta(-5) + \frac{1513}{252} \right)`},
		{Text: `\left( h(-87) \right)`},
		{Text: `\left( h(-23) \cdot 2 \right)`},
		{Text: `\left( -v_p(p^3!) + 3p+1 |_{p=2} \right)`},
		{Text: `\left( |\text{Aut}(V_4)| \right)`},
		{Text: `\left( \operatorname{Res}_{z=0} \frac{e^{6z}-1}{z^2} \right)`},
		{Text: `\left( \dim(\mathfrak{sl}_2(\mathbb{C})) \cdot 2 \right)`},
		{Text: `\left( \zeta(0) \cdot (-12) \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_8) - 2 \right)`},
	},
	'7': {
		{Text: `\left( \text{rank}(\mathfrak{e}_7) \right)`},
		{Text: `\left( \dim(V_7) \right)`},
		{Text: `\left( \dim(\text{ad}(\mathfrak{su}(3))) - 1 \right)`},
		{Text: `\left( \dim(L(6\omega_1)_0) \text{ for } A_1 \right)`},
		{Text: `\left( \dim(\text{Hom}_{A_1}(V_{5}, V_{1} \otimes V_{5})) \right)`},
		{Text: `\left( |W(A_2)| + 1 \right)`},
		{Text: `\left( \dim(\mathfrak{sp}(4,\mathbb{C})) - 3 \right)`},
		{Text: `\left( \text{mult}_0(\mathbb{C}[x_1..x_7]/(x_1..x_7)) \right)`},
		{Text: `\left( \text{dim}(\text{Symp}^7(\mathbb{C}^2)) - 1 \right)`},
		{Text: `\left( c_2(T_{\mathbb{P}^3}) \cdot H - 5 \right)`},
		{Text: `\left( h^{1,1}(X) - h^{2,1}(X) + 6 |_{X=\text{quintic}} \right)`},
		{Text: `\left( \chi(\text{dP}_2) + 5 \right)`},
		{Text: `\left( \deg(\nu_6(\mathbb{P}^1)) + 1 \right)`},
		{Text: `\left( c(4_1) + 2 \right)`},
		{Text: `\left( h(-71) \right)`},
		{Text: `\left( (x^2+7=2^n)|_{n=5} \rightarrow x \right)`},
		{Text: `\left( \sum_{k=1}^5 p(5,k) \right)`},
		{Text: `\left( \phi(14) + 1 \right)`},
		{Text: `\left( \zeta(-3) \cdot 120 + 6 \right)`},
		{Text: `\left( h(-47) + 2 \right)`},
		{Text: `\left( \dim(\text{M-Theory}) - 4 \right)`},
		{Text: `\left( \sigma(E_8) - 1 \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 7 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_6) + 1 \right)`},
		{Text: `\left( \left(\int_{-\infty}^{\infty} \frac{dx}{(1+x^2)^4}\right) \cdot \frac{112}{5\pi} \right)`},
	},
	'8': {
		{Text: `\left( \text{dim}(\mathfrak{sl}(3,\mathbb{C})) \right)`},
		{Text: `\left( \text{dim}(\mathfrak{so}(5)) - 2 \right)`},
		{Text: `\left( \text{dim}(\text{SU}(3)) \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_8) \right)`},
		{Text: `\left( \dim(\text{ad}(\mathfrak{sl}_3(\mathbb{C}))) \right)`},
		{Text: `\left( |\Delta(\mathfrak{sp}_4)| \right)`},
		{Text: `\left( \dim(\mathfrak{f}_4) - 44 \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 6 \right)`},
		{Text: `\left( \dim(\mathfrak{e}_7) - 125 \right)`},
		{Text: `\left( \text{dim}(\text{Symp}^8(\mathbb{C}^2)) - 1 \right)`},
		{Text: `\left( \sigma(E_8) \right)`},
		{Text: `\left( c_1(T_{\mathbb{P}^1 \times \mathbb{P}^1})^2 \right)`},
		{Text: `\left( h^{2,1}(\text{quintic}) - 93 \right)`},
		{Text: `\left( b_1(\mathbb{T}^2) \cdot 4 \right)`},
		{Text: `\left( \chi(\mathbb{CP}^3) + 4 \right)`},
		{Text: `\left( \tau(24) \right)`},
		{Text: `\left( \phi(15) \right)`},
		{Text: `\left( h(-47) + 3 \right)`},
		{Text: `\left( |W(A_2)| + 2 \right)`},
		{Text: `\left( \left(\int_{-\infty}^{\infty} \frac{dx}{(1+x^2)^4}\right) \cdot \frac{128}{5\pi} \right)`},
		{Text: `\left( \operatorname{Res}_{z=0} \frac{8\cosh(z)}{z} \right)`},
		{Text: `\left( \operatorname{Res}_{z=0} \frac{\sinh(8z)}{z^2} \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_6) + 2 \right)`},
		{Text: `\left( \chi(\mathbb{CP}^2) \cdot 3 - 1 \right)`},
	},
	'9': {
		{Text: `\left( \text{dim}(\mathfrak{so}(3) \otimes \mathfrak{so}(3)) \right)`},
		{Text: `\left( \dim(\mathfrak{sl}(3,\mathbb{C})) + 1 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_8) + 1 \right)`},
		{Text: `\left( \sigma(E_8) + 1 \right)`},
		{Text: `\left( |W(A_2)| + 3 \right)`},
		{Text: `\left( \dim(\mathfrak{g}_2) - 5 \right)`},
		{Text: `\left( \dim(\mathfrak{f}_4) - 43 \right)`},
		{Text: `\left( \dim(\mathfrak{e}_7) - 124 \right)`},
		{Text: `\left( \dim(\text{ad}(\mathfrak{su}(3))) + 1 \right)`},
		{Text: `\left( \text{dim}(\text{Symp}^9(\mathbb{C}^2)) - 1 \right)`},
		{Text: `\left( c_1(T_{\mathbb{P}^2})^2 \right)`},
		{Text: `\left( h^{1,1}(\text{K3 surface}) - 11 \right)`},
		{Text: `\left( b_1(\mathbb{T}^3) \cdot 3 \right)`},
		{Text: `\left( c(5_1) + 4 \right)`},
		{Text: `\left( h(-199) \right)`},
		{Text: `\left( \tau(36) \right)`},
		{Text: `\left( v_3(3^4!) \right)`},
		{Text: `\left( h(-87) + 3 \right)`},
		{Text: `\left( h(-47) + 4 \right)`},
		{Text: `\left( \deg(\nu_8(\mathbb{P}^1)) + 1 \right)`},
		{Text: `\left( \left(\int_{-\infty}^{\infty} \frac{dx}{(1+x^2)^5}\right) \cdot \frac{1152}{35\pi} \right)`},
		{Text: `\left( \operatorname{Res}_{z=0} \frac{9-z^2}{z(1-z)} \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_7) + 2 \right)`},
		{Text: `\left( \text{rank}(\mathfrak{e}_6) + 3 \right)`},
		{Text: `\left( \dim(\mathfrak{so}(5)) - 1 \right)`},
	},
}
