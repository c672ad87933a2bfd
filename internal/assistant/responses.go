package assistant

// Canned assistant replies, in markdown. Keep these in sync with the keyword
// rules in Respond: each belongs to exactly one branch.

const quantumResponse = `Based on the latest quantum computing research in DeResNet, I found several interesting developments:

**Key Findings:**
- Quantum error correction improvements showing 15% better fidelity
- New quantum algorithms for optimization problems
- Progress in quantum-classical hybrid systems

**Notable Papers:**
- "Quantum Computing Applications in Cryptography" by Dr. Alice Johnson - This paper explores quantum threats to current cryptographic systems and proposes quantum-resistant solutions.

Would you like me to dive deeper into any specific aspect of quantum computing research?`

const climateResponse = `I've analyzed the machine learning applications in climate science research:

**Current Trends:**
- Deep learning models for weather prediction with 23% improved accuracy
- Satellite data analysis using computer vision
- Carbon footprint modeling with reinforcement learning

**Recommended Reading:**
- "Machine Learning Approaches to Climate Change Prediction" by Dr. Carol Williams et al. - Shows novel ML architectures achieving state-of-the-art results.

The research shows promising applications of transformer models in climate data analysis. Would you like specific recommendations for your research area?`

const methodologyResponse = `**Paper Analysis: "Quantum Computing Applications in Cryptography"**

**Methodology Overview:**
1. **Literature Review:** Comprehensive analysis of 200+ quantum cryptography papers
2. **Theoretical Framework:** Mathematical modeling of quantum algorithms vs. classical security
3. **Experimental Design:** Simulation of quantum attacks on RSA and ECC systems
4. **Performance Metrics:** Security analysis using quantum complexity theory

**Key Innovation:** The paper introduces a novel quantum-resistant protocol that maintains computational efficiency while providing post-quantum security guarantees.

**Limitations:** The approach requires quantum hardware not widely available yet.

Would you like me to explain any specific technical aspect in more detail?`

const blockchainResponse = `**Current Blockchain Research Trends in DeResNet:**

**Popular Research Areas:**
- **Scalability Solutions:** Layer 2 protocols and sharding mechanisms
- **Consensus Mechanisms:** Proof-of-Stake variations and energy efficiency
- **DeFi Applications:** Automated market makers and yield farming protocols
- **Supply Chain Integration:** Transparency and traceability improvements

**Emerging Topics:**
- Cross-chain interoperability protocols
- Zero-knowledge proof applications
- NFTs for academic credentials
- DAOs for research funding

The research community is particularly focused on sustainability and real-world applications. Would you like me to find specific papers in any of these areas?`

const fallbackResponse = `I understand you're asking about "%s". Let me help you with that.

Based on the current research in DeResNet, I can provide insights on various topics including:
- Paper analysis and summarization
- Research trend identification
- Methodology explanations
- Similar work recommendations

Could you be more specific about what aspect you'd like me to focus on? For example:
- Are you looking for papers on a specific topic?
- Do you need help understanding a particular concept?
- Would you like me to analyze a specific research paper?`
